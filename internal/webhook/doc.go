// Package webhook posts contract text to the external analysis workflow and
// turns its JSON reply into a model.AnalysisResult.
//
// The client issues exactly one request per call. It never retries and
// applies no timeout unless one is configured; every failure (transport,
// status, or decoding) surfaces as a common.UserError whose user message is
// safe to show on screen.
package webhook
