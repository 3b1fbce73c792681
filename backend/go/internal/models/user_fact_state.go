package models

import "time"

// Reaction 定义了用户对事实的反应枚举。
type Reaction string

const (
	ReactionNone      Reaction = "none"
	ReactionLike      Reaction = "like"
	ReactionLove      Reaction = "love"
	ReactionMindBlown Reaction = "mind_blown"
	ReactionMeh       Reaction = "meh"
)

// Valid 报告反应值是否为合法的枚举值。
func (r Reaction) Valid() bool {
	switch r {
	case ReactionNone, ReactionLike, ReactionLove, ReactionMindBlown, ReactionMeh:
		return true
	}
	return false
}

// UserFactState 记录单个用户对单条事实的参与状态（已读/收藏/反应）。
// (user_id, fact_id) 上的联合唯一索引保证每个用户对每条事实至多一行，
// 写入通过条件化 upsert 完成，并发调用不会产生重复行。
type UserFactState struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"uniqueIndex:uk_user_fact;not null" json:"user_id"`
	FactID     uint       `gorm:"uniqueIndex:uk_user_fact;not null" json:"fact_id"`
	Seen       bool       `gorm:"default:false;not null" json:"seen"`
	SeenAt     *time.Time `json:"seen_at,omitempty"`
	IsFavorite bool       `gorm:"default:false;not null" json:"is_favorite"`
	Reaction   Reaction   `gorm:"type:varchar(20);default:'none';not null" json:"reaction"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (UserFactState) TableName() string {
	return "user_fact_states"
}
