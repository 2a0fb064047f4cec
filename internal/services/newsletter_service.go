package services

import (
	"fmt"
	"log"

	"vgcatalog/internal/models"
	"vgcatalog/internal/repositories"
)

// NewsletterSubject is the fixed subject line of every newsletter mail.
const NewsletterSubject = "This week's video game releases!"

// releaseWindowDays is the length of the upcoming-release window.
const releaseWindowDays = 7

// Mailer is the external mail sender capability. Send dispatches one mail
// to one recipient with the upcoming games as template data.
type Mailer interface {
	Send(to, subject string, games []models.VideoGame) error
}

// NewsletterService sends the weekly release newsletter to every subscribed
// user. It runs from an external trigger and holds no state; nothing here
// guards against two overlapping runs double-sending, that is the invoker's
// responsibility.
type NewsletterService struct {
	userRepo      repositories.UserRepository
	videoGameRepo repositories.VideoGameRepository
	mailer        Mailer
}

// NewNewsletterService creates a new NewsletterService.
func NewNewsletterService(userRepo repositories.UserRepository, videoGameRepo repositories.VideoGameRepository, mailer Mailer) *NewsletterService {
	return &NewsletterService{
		userRepo:      userRepo,
		videoGameRepo: videoGameRepo,
		mailer:        mailer,
	}
}

// Run performs one newsletter dispatch for the 7-day window starting at
// today, both bounds inclusive. No upcoming games or no subscribers is a
// normal success with zero dispatches. A failed send to one recipient is
// logged and does not block the remaining recipients; Run reports the
// dispatched count and the first send error.
func (s *NewsletterService) Run(today models.Date) (int, error) {
	games, err := s.videoGameRepo.FindReleasedBetween(today, today.AddDays(releaseWindowDays))
	if err != nil {
		return 0, fmt.Errorf("failed to query upcoming releases: %w", err)
	}
	if len(games) == 0 {
		log.Println("No upcoming releases this week, nothing to send")
		return 0, nil
	}

	users, err := s.userRepo.FindSubscribed()
	if err != nil {
		return 0, fmt.Errorf("failed to load subscribers: %w", err)
	}
	if len(users) == 0 {
		log.Println("No newsletter subscribers, nothing to send")
		return 0, nil
	}

	log.Printf("Sending the newsletter to %d subscribers (%d upcoming releases)", len(users), len(games))

	dispatched := 0
	var firstErr error
	for _, user := range users {
		if err := s.mailer.Send(user.Email, NewsletterSubject, games); err != nil {
			log.Printf("Warning: failed to send newsletter to %s: %v", user.Email, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		dispatched++
	}
	return dispatched, firstErr
}
