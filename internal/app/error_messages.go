// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// career-path client services and screens.
//
// All Msg* constants are human-readable message strings shown to the user to
// describe the outcome of an operation. Keeping them in one place ensures
// consistent wording throughout the client.
package app

const (
	// MsgLoginSuccessful is reported by a successful login.
	MsgLoginSuccessful = "Login successful!"

	// MsgSignupSuccessful is reported by a successful signup.
	MsgSignupSuccessful = "Signup successful!"

	// MsgInvalidUsernamePassword is reported for an unknown username and for
	// a wrong password alike.
	MsgInvalidUsernamePassword = "Invalid username or password."

	// MsgUsernameAlreadyExists is reported when signing up with a taken
	// username.
	MsgUsernameAlreadyExists = "Username already exists."

	// MsgEmptyCredentials is reported when the auth form is submitted with a
	// blank field.
	MsgEmptyCredentials = "Username and password cannot be empty."

	// MsgUnexpectedError is reported when the store fails for reasons the
	// user cannot fix.
	MsgUnexpectedError = "An unexpected error occurred. Please try again."

	// MsgProfileInputRequired is reported when the profile form is submitted
	// without resume text or career goal.
	MsgProfileInputRequired = "Please provide your details/resume and a career goal."

	// MsgExtractionFailed is reported when an uploaded file yields no text.
	MsgExtractionFailed = "Could not read text from the file. Please ensure it's a text-based document or paste text manually."

	// MsgUnsupportedFile is reported for uploads other than .txt, .pdf and
	// .docx.
	MsgUnsupportedFile = "Unsupported file type. Please upload a .txt, .pdf or .docx file."

	// MsgNoJobsFound is shown when a job search returns an empty list.
	MsgNoJobsFound = "No jobs found. Try adjusting your filters."

	// MsgStateInvariant is shown by the error screen when the client reaches
	// an inconsistent state.
	MsgStateInvariant = "Something went wrong while switching screens."
)
