// Package logeater exposes the schema-skeleton and field-extraction core as
// a library.
//
// Quick start:
//
//	sk, err := logeater.BuildSkeleton(`{"Response--notes":"ok","Scores_of_3":[1,2,3]}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sk) // map[response: scores:[]]
//
//	row := logeater.Extract("fuzzy", record, []string{"status", "request.id"})
//
// All operations are pure functions over immutable input trees and are safe
// to call concurrently across independent records.
package logeater
