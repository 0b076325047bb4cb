// Package agent provides the delivery agent domain model.
//
// An Agent is a courier with a vehicle, a self-reported position and an
// availability status. The dispatcher only considers AVAILABLE agents;
// claiming an agent moves it to BUSY, and terminal delivery statuses
// release it back to AVAILABLE, counting completed deliveries.
package agent
