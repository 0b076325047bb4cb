// Package contracts defines the event envelopes, topic names and payment
// outcome vocabulary shared between services. Events are flat JSON
// structures published to one topic per domain, keyed by order id so all
// events for one order arrive in publish order.
package contracts
