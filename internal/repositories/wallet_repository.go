package repositories

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fixa_backend/internal/models"
)

var (
	ErrInsufficientBalance = errors.New("insufficient available balance")
	ErrWalletNotFound      = errors.New("wallet not found")
)

type WalletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

func (r *WalletRepository) WithTx(tx *gorm.DB) *WalletRepository {
	return &WalletRepository{db: tx}
}

// GetOrCreate lazily creates a zeroed wallet row. Idempotent.
func (r *WalletRepository) GetOrCreate(userID string) (*models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.Where(models.Wallet{UserID: userID}).FirstOrCreate(&wallet).Error
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (r *WalletRepository) Get(userID string) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.First(&wallet, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, err
	}
	return &wallet, nil
}

// AddEarning credits the available bucket and lifetime earnings together.
func (r *WalletRepository) AddEarning(userID string, amount decimal.Decimal) error {
	res := r.db.Model(&models.Wallet{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"balance_available": gorm.Expr("balance_available + ?", amount),
			"lifetime_earnings": gorm.Expr("lifetime_earnings + ?", amount),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrWalletNotFound
	}
	return nil
}

// MoveAvailableToPending debits available and credits pending as one
// conditional update; fails if the available bucket cannot cover the amount.
func (r *WalletRepository) MoveAvailableToPending(userID string, amount decimal.Decimal) error {
	res := r.db.Model(&models.Wallet{}).
		Where("user_id = ? AND balance_available >= ?", userID, amount).
		Updates(map[string]interface{}{
			"balance_available": gorm.Expr("balance_available - ?", amount),
			"balance_pending":   gorm.Expr("balance_pending + ?", amount),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientBalance
	}
	return nil
}

func (r *WalletRepository) AppendTransaction(txn *models.WalletTransaction) error {
	return r.db.Create(txn).Error
}

func (r *WalletRepository) Transactions(userID string, limit int) ([]models.WalletTransaction, error) {
	var txns []models.WalletTransaction
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&txns).Error
	return txns, err
}

func (r *WalletRepository) CreatePayout(payout *models.Payout) error {
	return r.db.Create(payout).Error
}

func (r *WalletRepository) Payouts(userID string, limit int) ([]models.Payout, error) {
	var payouts []models.Payout
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&payouts).Error
	return payouts, err
}
