package entity

// Review is a guest review shown on the home page. Read-only for this
// service; reviews are collected elsewhere.
type Review struct {
	ID           string
	Content      string
	ReviewerName string
	Rating       int // 0 to 5 stars.
}
