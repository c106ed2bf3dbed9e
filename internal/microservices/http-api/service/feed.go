package service

import (
	"slices"

	"litreview/internal/microservices/http-api/dto"
	"litreview/internal/microservices/http-api/models"
)

// FeedPolicy selects the optional filters of the viewer feed.
type FeedPolicy struct {
	HonorBlocks         bool
	HideReviewedTickets bool
}

func DefaultFeedPolicy() FeedPolicy {
	return FeedPolicy{HonorBlocks: true}
}

// assembleFeed applies the policy to the candidate rows and returns the
// merged, ordered items. blocked may be nil.
func assembleFeed(tickets []models.Ticket, reviews []models.Review, blocked []string, policy FeedPolicy) []dto.FeedItem {
	hidden := make(map[string]struct{}, len(blocked))
	if policy.HonorBlocks {
		for _, id := range blocked {
			hidden[id] = struct{}{}
		}
	}

	items := make([]dto.FeedItem, 0, len(tickets)+len(reviews))
	reviewed := make(map[int64]struct{}, len(reviews))

	for i := range reviews {
		if _, skip := hidden[reviews[i].UserID]; skip {
			continue
		}
		reviewed[reviews[i].TicketID] = struct{}{}
		items = append(items, reviewItem(&reviews[i]))
	}

	for i := range tickets {
		if _, skip := hidden[tickets[i].UserID]; skip {
			continue
		}
		if policy.HideReviewedTickets {
			if _, ok := reviewed[tickets[i].ID]; ok {
				continue
			}
		}
		items = append(items, ticketItem(&tickets[i]))
	}

	sortFeed(items)
	return items
}

func ticketItem(t *models.Ticket) dto.FeedItem {
	return dto.FeedItem{
		Kind:        dto.FeedKindTicket,
		ID:          t.ID,
		TimeCreated: t.TimeCreated,
		Ticket:      dto.FromModelToTicketResponse(t),
	}
}

func reviewItem(r *models.Review) dto.FeedItem {
	return dto.FeedItem{
		Kind:        dto.FeedKindReview,
		ID:          r.ID,
		TimeCreated: r.TimeCreated,
		Review:      dto.FromModelToReviewResponse(r),
	}
}

// sortFeed orders newest first. Equal timestamps put reviews before
// tickets, then higher ids first.
func sortFeed(items []dto.FeedItem) {
	slices.SortStableFunc(items, func(a, b dto.FeedItem) int {
		if c := b.TimeCreated.Compare(a.TimeCreated); c != 0 {
			return c
		}
		if a.Kind != b.Kind {
			if a.Kind == dto.FeedKindReview {
				return -1
			}
			return 1
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})
}

// paginate returns the 1-based page of items. Pages past the end are empty.
func paginate(items []dto.FeedItem, page, pageSize int) []dto.FeedItem {
	if page < 1 || pageSize < 1 || page-1 >= (len(items)+pageSize-1)/pageSize {
		return []dto.FeedItem{}
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, len(items))
	return items[start:end]
}
