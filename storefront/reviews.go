package storefront

import (
	"context"
	"time"

	"github.com/nigel2421/wemisireact/models"
)

// SubmitReview sends a client-stamped review for the product and, on success,
// patches the in-memory product list so the detail view refreshes without a
// full reload. On failure the prior state is left untouched and the reason is
// surfaced.
func (s *State) SubmitReview(ctx context.Context, productID, userName string, rating int, comment string) error {
	review := models.Review{
		UserName: userName,
		Rating:   rating,
		Comment:  comment,
		Date:     time.Now().Format("2006-01-02"),
	}
	saved, err := s.api.SubmitReview(ctx, productID, review)
	if err != nil {
		s.notify(NoticeError, "Could not submit review: "+err.Error())
		return err
	}

	for i := range s.products {
		if s.products[i].ID == productID {
			s.products[i].Reviews = append(s.products[i].Reviews, saved)
			break
		}
	}
	s.notify(NoticeSuccess, "Thank you for your review!")
	return nil
}
