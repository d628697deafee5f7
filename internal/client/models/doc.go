// Package models defines the client-side data types of a quiz play-through:
// categories and questions as served by the quiz service, the in-flight quiz
// session with its shuffled options and selections, score records, profile
// data and the controller stages.
package models
