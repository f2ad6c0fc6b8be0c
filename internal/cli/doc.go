// Package cli implements the guestbook operator command line.
//
// Commands:
//
//	migrate                              apply schema migrations
//	sign   -name N -text T -email E      store a new entry
//	import -file entries.json            load backdated entries in one transaction
//	list   [-page N]                     print a page of entries, newest first
//	show   -id N                         print one entry
//	delete -id N                         remove one entry
//	version                              print build information
//
// Configuration flags (-c, -k, -d, -p, -l, -t) may appear anywhere on the
// command line; see package config.
package cli
