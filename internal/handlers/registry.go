package handlers

// AppHandlers bundles all HTTP handlers for route registration.
type AppHandlers struct {
	AuthHandler   *AuthHandler
	JobHandler    *JobHandler
	BidHandler    *BidHandler
	CreditHandler *CreditHandler
	WalletHandler *WalletHandler
}
