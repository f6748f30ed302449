package models

type UserRole string
type SubscriptionTier string
type JobStatus string
type BidStatus string
type BudgetType string
type UrgencyTier string
type PayoutStatus string
type CreditTransactionType string
type WalletTransactionType string

const (
	UserRoleClient UserRole = "client"
	UserRoleWorker UserRole = "worker"
	UserRoleBoth   UserRole = "both"
	UserRoleAdmin  UserRole = "admin"

	TierFree  SubscriptionTier = "free"
	TierPro   SubscriptionTier = "pro"
	TierElite SubscriptionTier = "elite"

	JobStatusOpen              JobStatus = "open"
	JobStatusInProgress        JobStatus = "in_progress"
	JobStatusPendingCompletion JobStatus = "pending_completion"
	JobStatusCompleted         JobStatus = "completed"
	JobStatusCancelled         JobStatus = "cancelled"
	JobStatusExpired           JobStatus = "expired"

	BidStatusPending   BidStatus = "pending"
	BidStatusAccepted  BidStatus = "accepted"
	BidStatusRejected  BidStatus = "rejected"
	BidStatusWithdrawn BidStatus = "withdrawn"

	BudgetTypeFixed      BudgetType = "fixed"
	BudgetTypeHourly     BudgetType = "hourly"
	BudgetTypeNegotiable BudgetType = "negotiable"

	UrgencyToday     UrgencyTier = "TODAY"
	UrgencyThisWeek  UrgencyTier = "THIS_WEEK"
	UrgencyThisMonth UrgencyTier = "THIS_MONTH"
	UrgencyFlexible  UrgencyTier = "FLEXIBLE"

	PayoutStatusPending    PayoutStatus = "pending"
	PayoutStatusProcessing PayoutStatus = "processing"
	PayoutStatusCompleted  PayoutStatus = "completed"
	PayoutStatusFailed     PayoutStatus = "failed"

	CreditTxPurchase CreditTransactionType = "purchase"
	CreditTxSpend    CreditTransactionType = "spend"
	CreditTxRefund   CreditTransactionType = "refund"
	CreditTxBonus    CreditTransactionType = "bonus"

	WalletTxEarning WalletTransactionType = "earning"
	WalletTxPayout  WalletTransactionType = "payout"
	WalletTxRefund  WalletTransactionType = "refund"
	WalletTxHold    WalletTransactionType = "hold"
	WalletTxRelease WalletTransactionType = "release"
)

func ValidUserRole(r UserRole) bool {
	switch r {
	case UserRoleClient, UserRoleWorker, UserRoleBoth, UserRoleAdmin:
		return true
	}
	return false
}

func ValidBudgetType(t BudgetType) bool {
	switch t {
	case BudgetTypeFixed, BudgetTypeHourly, BudgetTypeNegotiable:
		return true
	}
	return false
}

func ValidUrgency(u UrgencyTier) bool {
	switch u {
	case UrgencyToday, UrgencyThisWeek, UrgencyThisMonth, UrgencyFlexible:
		return true
	}
	return false
}
