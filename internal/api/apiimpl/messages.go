package apiimpl

import (
	"context"
	"fmt"
	"net/url"

	"github.com/orgball2608/subscraper/internal/domain"
	"github.com/orgball2608/subscraper/pkg/errors"
)

func (a *ApiImpl) GetMessages(ctx context.Context, chatID int64, resume []*domain.Message) ([]*domain.Message, error) {
	path := fmt.Sprintf("/chats/%d/messages", chatID)
	if len(resume) == 0 {
		return paginate[*domain.Message](ctx, a, "messages", path, url.Values{"order": {"desc"}})
	}

	known := make(map[int64]struct{}, len(resume))
	for _, m := range resume {
		known[m.ID] = struct{}{}
	}

	var fresh []*domain.Message
	for i := 0; i < maxPages; i++ {
		q := url.Values{
			"order":  {"desc"},
			"limit":  {fmt.Sprint(pageLimit)},
			"offset": {fmt.Sprint(i * pageLimit)},
		}
		var p page[*domain.Message]
		if err := a.get(ctx, "messages", path, q, &p); err != nil {
			return nil, err
		}

		reached := false
		for _, m := range p.List {
			if _, ok := known[m.ID]; ok {
				reached = true
				break
			}
			fresh = append(fresh, m)
		}
		if reached || !p.HasMore || len(p.List) == 0 {
			break
		}
	}

	a.logger.Debug("Resumed chat history", "chat_id", chatID, "new", len(fresh), "cached", len(resume))
	return append(fresh, resume...), nil
}

func (a *ApiImpl) GetMassMessages(ctx context.Context) ([]*domain.MassMessage, error) {
	return paginate[*domain.MassMessage](ctx, a, "mass_messages", "/messages/queue/stats", nil)
}

func (a *ApiImpl) SearchMessages(ctx context.Context, text string, limit int) ([]*domain.ChatSearchItem, error) {
	q := url.Values{
		"limit":  {fmt.Sprint(limit)},
		"offset": {"0"},
		"order":  {"activity"},
		"query":  {text},
	}
	var p page[*domain.ChatSearchItem]
	if err := a.get(ctx, "search_messages", "/chats", q, &p); err != nil {
		return nil, err
	}
	return p.List, nil
}

func (a *ApiImpl) GetMessageByID(ctx context.Context, chatID, messageID int64) (*domain.Message, error) {
	q := url.Values{
		"limit":   {"1"},
		"offset":  {"0"},
		"firstId": {fmt.Sprint(messageID)},
	}
	var p page[*domain.Message]
	if err := a.get(ctx, "message_by_id", fmt.Sprintf("/chats/%d/messages", chatID), q, &p); err != nil {
		return nil, err
	}
	if len(p.List) == 0 {
		return nil, errors.Wrap(errors.ErrNotFound, fmt.Sprintf("message %d in chat %d", messageID, chatID))
	}
	return p.List[0], nil
}
