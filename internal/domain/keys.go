package domain

type CtxKey string

const (
	KeyRef       CtxKey = "Ref"
	KeyRequestID CtxKey = "RequestID"
)
