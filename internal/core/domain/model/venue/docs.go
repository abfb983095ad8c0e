// Package venue provides the Venue entity of the venue catalogue.
//
// A venue knows how many people it holds and which corridor traffic it generates
// while hosting an event. It satisfies the capability contract the allocator consumes.
package venue
