// Package voxdoc provides a local, CLI-based document question-answering
// and note-taking tool. It indexes documents for semantic search, answers
// natural language questions with a locally hosted LLM, accepts spoken
// questions via push-to-talk recording and transcription, and can read
// answers aloud. When local retrieval finds nothing, it can fall back to
// fetching a web page as a secondary information source.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, chromem/, ollama/).
package voxdoc
