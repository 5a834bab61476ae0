// Package acl is the anti-corruption layer between the quotes API's wire
// format and the domain. [QuotesClient] implements ports.QuotesAPI: it
// speaks JSON over [clients.Client], validates what comes back and turns
// every failure into a domain error.
//
// Error envelopes are mapped by their code first and their HTTP status
// second, because the API reports conflicts as 400 CONFLICT:
//
//   - NOT_FOUND / 404 becomes [domain.ErrNotFound]
//   - CONFLICT becomes [domain.ErrConflict]
//   - VALIDATION_ERROR, BAD_REQUEST / other 4xx become [domain.ErrValidation]
//   - 5xx, timeouts and transport failures become [domain.ErrUnavailable]
//
// The server's message is kept verbatim so the CLI can show it.
package acl
