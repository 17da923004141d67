// internal/app/messages.go

package app

import "time"

// TickMsg drives the render loop. The payload is the time the tick
// fired; everything else the loop reacts to arrives as its own message
// and is applied before the next tick redraws.
type TickMsg time.Time
