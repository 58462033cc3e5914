// Package pipeline provides the orchestration services that drive each
// content pipeline end to end: fetch or ask, extract, validate, and store.
//
// Every call is one linear pass. Stages return their errors unchanged, so
// callers see the tagged error of the stage that failed.
package pipeline
