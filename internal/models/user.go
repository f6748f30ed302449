package models

type User struct {
	BaseModel
	Email            string           `gorm:"uniqueIndex;not null" json:"email"`
	Phone            string           `gorm:"uniqueIndex;not null" json:"phone"`
	PasswordHash     string           `gorm:"not null" json:"-"`
	Name             string           `json:"name"`
	Role             UserRole         `gorm:"type:varchar(20);not null" json:"role"`
	SubscriptionTier SubscriptionTier `gorm:"type:varchar(20);default:'free'" json:"subscription_tier"`
	IsVerified       bool             `gorm:"default:false" json:"is_verified"`
	PhoneVerified    bool             `gorm:"default:false" json:"phone_verified"`
	Rating           float64          `gorm:"default:0" json:"rating"`
	JobsCompleted    int              `gorm:"default:0" json:"jobs_completed"`
}

// Capability checks derived from the role enum. Call sites must use these
// instead of comparing role strings directly.

func (u *User) CanPostJobs() bool {
	switch u.Role {
	case UserRoleClient, UserRoleBoth, UserRoleAdmin:
		return true
	}
	return false
}

func (u *User) CanBid() bool {
	switch u.Role {
	case UserRoleWorker, UserRoleBoth, UserRoleAdmin:
		return true
	}
	return false
}

func (u *User) IsProOrElite() bool {
	return u.SubscriptionTier == TierPro || u.SubscriptionTier == TierElite
}
