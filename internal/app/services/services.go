// Package services holds the business logic between controllers and
// repositories.
//
// Services defined in this package:
// - AuthService: signup, login and token issuance
// - UserService: user lookup for the protected user route
// - CohortService: cohort CRUD with enum validation
// - StudentService: student CRUD with enum validation and cohort expansion
package services
