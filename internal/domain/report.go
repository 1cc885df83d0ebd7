package domain

import "time"

type ReportReason string

const (
	ReasonSpam          ReportReason = "SPAM"
	ReasonInappropriate ReportReason = "CONTEUDO_IMPROPRIO"
	ReasonDisrespectful ReportReason = "DESRESPEITOSO"
	ReasonOther         ReportReason = "OUTRO"
)

func (r ReportReason) Valid() bool {
	switch r {
	case ReasonSpam, ReasonInappropriate, ReasonDisrespectful, ReasonOther:
		return true
	}
	return false
}

type ReportStatus string

const (
	StatusPending     ReportStatus = "PENDENTE"
	StatusUnderReview ReportStatus = "ANALISE"
	StatusResolved    ReportStatus = "RESOLVIDO"
	StatusRejected    ReportStatus = "REJEITADO"
)

type ContentType string

const (
	ContentRecipe  ContentType = "RECEITA"
	ContentComment ContentType = "COMENTARIO"
)

func (t ContentType) Valid() bool {
	return t == ContentRecipe || t == ContentComment
}

// ReportedContent is the tagged reference a report points at, either a
// recipe or a comment. Creation verifies the target row actually exists.
type ReportedContent struct {
	Type ContentType `json:"content_type" gorm:"column:content_type;size:10;not null"`
	ID   int64       `json:"content_id" gorm:"column:content_id;not null"`
}

type Report struct {
	ID        int64           `json:"id" gorm:"primaryKey"`
	UserID    int64           `json:"user_id" gorm:"not null;index"`
	Reason    ReportReason    `json:"reason" gorm:"size:20;not null"`
	Status    ReportStatus    `json:"status" gorm:"size:10;default:PENDENTE"`
	Content   ReportedContent `json:"content" gorm:"embedded"`
	CreatedAt time.Time       `json:"created_at"`
}

func (Report) TableName() string { return "reports" }
