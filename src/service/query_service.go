package service

import (
	"context"
	"strings"

	"gitlab.com/open-soft/go-crypto-dashboard/src/client"
)

const QueryWaitingPlaceholder = "Waiting..."
const QueryEmptyReplyPlaceholder = "[empty reply]"

type QueryService struct {
	API            client.DashboardAPIInterface
	SessionService *SessionService
}

// Prepare trims the input; blank input must not produce a request.
func (q *QueryService) Prepare(input string) (string, bool) {
	text := strings.TrimSpace(input)

	return text, text != ""
}

func (q *QueryService) Ask(ctx context.Context, text string) (string, error) {
	sid, err := q.SessionService.GetOrCreate(ctx)
	if err != nil {
		return "", err
	}

	response, err := q.API.Ask(ctx, text, sid)
	if err != nil {
		return "", err
	}

	if !response.HasReply() {
		return QueryEmptyReplyPlaceholder, nil
	}

	return *response.Reply, nil
}
