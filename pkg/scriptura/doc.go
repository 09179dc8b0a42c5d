// Package scriptura provides types, interfaces, and helpers for working with
// the Scriptura Bible-content REST API.
//
// # Overview
//
// The scriptura package defines the domain records (e.g., BibleVersion, Book,
// Chapter, Verse, Passage, Language, Organization, License, VerseOfTheDay) and
// the interfaces for resource-oriented clients (e.g., BiblesClient,
// LanguagesClient). A concrete implementation of these clients is provided by
// the bibleclient package, which wires configuration and transport. Most
// consumers should import bibleclient to construct a client and then interact
// with the resource client interfaces exposed here.
//
// # Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/scriptura-io/scriptura-client/pkg/bibleclient"
//	  "github.com/scriptura-io/scriptura-client/pkg/scriptura"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := bibleclient.New(&scriptura.Config{APIKey: "app-key"})
//	  if err != nil { log.Fatal(err) }
//	  defer cli.Close()
//
//	  result, err := cli.Bibles().GetVersion(ctx, 111)
//	  if err != nil { log.Fatal(err) } // transport failure
//	  if result.IsErr() {
//	    // domain outcome, e.g. version not found
//	    log.Println(result.DomainErr())
//	    return
//	  }
//	  _ = result.Value()
//	}
//
// # Results and errors
//
// Every endpoint method returns (Result[T], error). The error position
// carries transport failures only: *NetworkError, *AuthenticationError,
// *RateLimitError, *ServerError, *UnexpectedStatusError, or ErrClientClosed.
// The Result carries the domain outcome: Ok with the decoded record, or Err
// with a DomainError (*NotFoundError or *ValidationError). Domain errors are
// never delivered through the error position and transport errors never
// appear inside a Result; callers branch on the two channels independently.
// Helpers such as IsAuthentication, IsRateLimit, and IsServer make it easy to
// classify transport failures.
//
// # Pagination
//
// List endpoints return PaginatedResponse[T] preserving server order. The
// library never follows NextPageToken on its own; pass the token back via the
// endpoint's list options to fetch the next page.
//
// # Blocking and asynchronous facades
//
// bibleclient.New returns the blocking Client; bibleclient.NewAsync returns
// an AsyncClient whose methods start the request immediately and hand back a
// Future. Future.Wait is the single suspension point and honors context
// cancellation. The two facades share the endpoint logic but never share a
// connection pool; pick one execution model per client instance.
package scriptura
