// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

// Package billboard resolves intelligent cinema billboards.
//
// A billboard covers a number of consecutive weeks. For every week the
// resolver proposes movies for the big rooms (blockbuster genres) and the
// small rooms (niche genres), picking titles released during the trailing
// month of that week. Titles are never repeated across the whole billboard.
//
// # Resolution
//
// Resolution runs in three steps:
//
//  1. KeywordExtractor turns the city into a set of catalog keyword ids taken
//     from the five titles that sold the most seats there. A blank city, or a
//     sales lookup that fails or returns nothing, yields no keywords and the
//     catalog queries are not narrowed.
//  2. Resolver starts one goroutine per week. Each week starts two PageWalkers,
//     one per room category, sharing the keyword set.
//  3. PageWalker paginates the catalog until it has claimed its quota of
//     titles or the catalog runs out of results.
//
// Every walker of a resolution shares one AssignedTitles set. TryClaim on that
// set is the only synchronization between walkers, so a title is used at most
// once even though up to 2 x weeks walkers run at the same time. Which walker
// wins a contended title is not deterministic.
//
// # Failure Model
//
// Collaborator failures never fail a resolution. A failed keyword lookup drops
// that title's contribution and a failed page fetch ends that walker with what
// it has accumulated. The worst case is an under-filled or empty billboard.
// Required parameters are checked by Service before resolution starts.
//
// # Example
//
//	resolver := billboard.NewResolver(salesRepo, catalog, nil, logger)
//	weeks := resolver.Resolve(ctx, from, 3, 2, 3, "Barcelona")
package billboard
