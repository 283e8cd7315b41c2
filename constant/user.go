package constant

type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusActive   UserStatus = "active"
	UserStatusRejected UserStatus = "rejected"
)

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type VIPLevel string

const (
	VIPLevelBronze  VIPLevel = "Bronze"
	VIPLevelSilver  VIPLevel = "Silver"
	VIPLevelGold    VIPLevel = "Gold"
	VIPLevelDiamond VIPLevel = "Diamond"
)
