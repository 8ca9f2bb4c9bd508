package model

type AIRequest struct {
	Text      string `json:"text"`
	SessionId string `json:"sid"`
}

type AIResponse struct {
	Reply *string `json:"reply,omitempty"`
}

func (a AIResponse) HasReply() bool {
	return a.Reply != nil && *a.Reply != ""
}
