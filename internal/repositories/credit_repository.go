package repositories

import (
	"errors"

	"gorm.io/gorm"

	"fixa_backend/internal/models"
)

var (
	ErrInsufficientCredits = errors.New("insufficient credit balance")
	ErrCreditBalanceMissed = errors.New("credit balance row not found")
)

type CreditRepository struct {
	db *gorm.DB
}

func NewCreditRepository(db *gorm.DB) *CreditRepository {
	return &CreditRepository{db: db}
}

func (r *CreditRepository) WithTx(tx *gorm.DB) *CreditRepository {
	return &CreditRepository{db: tx}
}

// GetOrCreate lazily creates a zeroed balance row. Idempotent.
func (r *CreditRepository) GetOrCreate(userID string) (*models.CreditBalance, error) {
	var balance models.CreditBalance
	err := r.db.Where(models.CreditBalance{UserID: userID}).FirstOrCreate(&balance).Error
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

// Deduct performs the balance check and decrement as one conditional update,
// so two concurrent deducts can never both pass against a stale read.
func (r *CreditRepository) Deduct(userID string, amount int) error {
	res := r.db.Model(&models.CreditBalance{}).
		Where("user_id = ? AND balance >= ?", userID, amount).
		Updates(map[string]interface{}{
			"balance":        gorm.Expr("balance - ?", amount),
			"lifetime_spent": gorm.Expr("lifetime_spent + ?", amount),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientCredits
	}
	return nil
}

// Add increments the balance. Every inflow (purchase, bonus, refund) bumps
// lifetime_purchased so balance == lifetime_purchased - lifetime_spent holds
// for any mix of grant kinds.
func (r *CreditRepository) Add(userID string, amount int) error {
	res := r.db.Model(&models.CreditBalance{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"balance":            gorm.Expr("balance + ?", amount),
			"lifetime_purchased": gorm.Expr("lifetime_purchased + ?", amount),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCreditBalanceMissed
	}
	return nil
}

func (r *CreditRepository) AppendTransaction(txn *models.CreditTransaction) error {
	return r.db.Create(txn).Error
}

func (r *CreditRepository) Transactions(userID string, limit int) ([]models.CreditTransaction, error) {
	var txns []models.CreditTransaction
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&txns).Error
	return txns, err
}
