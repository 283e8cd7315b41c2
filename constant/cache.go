package constant

// Redis key formats. The relational store stays authoritative; these keys are
// a best-effort accelerator only.
const (
	KeyOTP                  = "otp:%s"                   // otp:<phone>
	KeySession              = "session:%s"               // session:<jti>
	KeyInventoryReservation = "inventory:reserve:%d:%s"  // inventory:reserve:<product_id>:<order_id>
)

// Notification topics.
const (
	TopicAdmin      = "admin"
	TopicUserFormat = "user:%d"
)

// Settings rows.
const (
	SettingKeyVIPTiers      = "vip_tiers"
	SettingKeyDiscountCodes = "discount_codes"
)
