package apperrors

import "net/http"

// Predefined domain errors. Services return these as-is so callers can match
// them with errors.Is; details, when needed, go through WithDetails (which
// clones, leaving the sentinel untouched).

// --- Users & auth ---

var ErrUserNotFound = New(
	CodeNotFound, "user", "User not found", http.StatusNotFound)

var ErrEmailTaken = New(
	CodeAlreadyExists, "user", "Email is already registered", http.StatusConflict)

var ErrPhoneTaken = New(
	CodeAlreadyExists, "user", "Phone number is already registered", http.StatusConflict)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)

var ErrInsufficientPermissions = New(
	CodeForbidden, "auth", "Insufficient permissions", http.StatusForbidden)

var ErrInvalidVerificationCode = New(
	CodeInvalidCode, "auth", "Verification code is invalid or expired", http.StatusBadRequest)

// --- Jobs ---

var ErrJobNotFound = New(
	CodeNotFound, "job", "Job not found", http.StatusNotFound)

var ErrNotJobOwner = New(
	CodeForbidden, "job", "Only the job's client may perform this operation", http.StatusForbidden)

var ErrNotJobParticipant = New(
	CodeForbidden, "job", "Only the job's client or hired worker may perform this operation", http.StatusForbidden)

var ErrInvalidJobStatus = New(
	CodeInvalidStatus, "job", "Job is not in the required status for this operation", http.StatusConflict)

var ErrJobNotOpen = New(
	CodeInvalidStatus, "job", "Job is not open for bidding", http.StatusConflict)

var ErrJobExpired = New(
	CodeInvalidStatus, "job", "Job has expired", http.StatusConflict)

// --- Bids ---

var ErrBidNotFound = New(
	CodeNotFound, "bid", "Bid not found", http.StatusNotFound)

var ErrBidNotPending = New(
	CodeInvalidStatus, "bid", "Bid is no longer pending", http.StatusConflict)

var ErrDuplicateBid = New(
	CodeAlreadyExists, "bid", "A pending bid for this job already exists", http.StatusConflict)

var ErrCannotBidOwnJob = New(
	CodeInvalidOperation, "bid", "Bidding on your own job is not allowed", http.StatusBadRequest)

// --- Ledgers & settlement ---

var ErrInsufficientCredits = New(
	CodeInsufficientCredits, "credits", "Not enough credits to place this bid", http.StatusPaymentRequired)

var ErrInsufficientBalance = New(
	CodeInsufficientBalance, "wallet", "Requested amount exceeds available balance", http.StatusPaymentRequired)

var ErrJobNotPayable = New(
	CodeInvalidStatus, "settlement", "Job has no hired worker or is not awaiting payment", http.StatusConflict)
