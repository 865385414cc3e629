package memory

import (
	"fmt"
	"math/rand/v2"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
)

var reviewerNames = []string{
	"John D.", "Maria S.", "Robert T.", "Jennifer L.", "Michael P.", "Sarah M.", "Thomas B.", "Lisa K.",
}

var reviewComments = []string{
	"This course exceeded my expectations! The instructor explains complex concepts in a way that's easy to understand.",
	"Great content and well-structured. I would have liked more advanced exercises, but overall it's an excellent course.",
	"As someone with no prior experience, this course was perfect for me. The step-by-step approach helped me build confidence.",
	"The instructor is knowledgeable and engaging. I learned so much in a short amount of time.",
	"Comprehensive and practical. I was able to apply what I learned immediately in my job.",
	"Well-paced and thorough. The projects were challenging but doable and really reinforced the concepts.",
	"Excellent course! The instructor's teaching style made complex topics accessible and enjoyable.",
	"This course provided exactly what I needed to level up my skills. Highly recommended!",
}

// generateReviews builds count reviews rated 4 or 5 stars. The same seed always
// yields the same reviews so the catalog is stable across restarts.
func generateReviews(seed uint64, count int) []models.Review {
	rng := rand.New(rand.NewPCG(seed, uint64(count)))

	reviews := make([]models.Review, 0, count)
	for i := 0; i < count; i++ {
		name := reviewerNames[rng.IntN(len(reviewerNames))]
		comment := reviewComments[rng.IntN(len(reviewComments))]
		monthsAgo := rng.IntN(6) + 1

		unit := "months"
		if monthsAgo == 1 {
			unit = "month"
		}

		reviews = append(reviews, models.Review{
			ID:      fmt.Sprintf("review-%d", i+1),
			Name:    name,
			Avatar:  fmt.Sprintf("/placeholder.svg?height=40&width=40&text=%s", name[:1]),
			Rating:  rng.IntN(2) + 4,
			Date:    fmt.Sprintf("%d %s ago", monthsAgo, unit),
			Comment: comment,
		})
	}

	return reviews
}
