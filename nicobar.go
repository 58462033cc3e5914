// Package nicobar aggregates untrusted external content (AI-generated article
// text, manga reader pages and train departure boards) and turns it into
// validated domain values through staged, fail-fast pipelines.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, gemini/).
package nicobar
