// Package services contains the application services of the quiz client:
// the identity holder (AuthService), the category catalog (CatalogService),
// the quiz engine (QuizEngine) and the grader (Grader).
//
// Each service converts the transport errors of package client into the
// error kinds of package common at the point where the remote call is made.
package services
