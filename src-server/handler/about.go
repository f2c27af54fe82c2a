// This package contains the Discord interaction handlers.
//
// The Router is the platform-independent part: it takes a
// model.InteractionEvent and returns at most one model.Reply. The adapter
// in adapter.go converts discordgo events into InteractionEvents and sends
// the reply back, so everything else can be tested without a gateway
// connection.
//
// There should be 2 functions per handler, one for adding the handler to
// the Router (registration), and one for handling the interaction.
//
// Backend failures are logged here and rendered as a generic panel, they
// never leave the handler.
package handler
