package agentverse

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
	"github.com/sneaxhuh/sentinel/internal/core/ports/driven"
	"github.com/sneaxhuh/sentinel/internal/logger"
)

// Ensure SimulatedCollector implements the interface.
var _ driven.OpinionCollector = (*SimulatedCollector)(nil)

// featureVariations are the response themes a simulated agent can pick
// from. Each row is a coherent set: headline feature, supporting detail,
// second feature, second detail.
var featureVariations = [][4]string{
	{"Machine Learning Integration", "AI-powered content analysis", "Automated content moderation", "Smart recommendation engine"},
	{"Advanced Analytics Dashboard", "User behavior tracking", "Performance metrics visualization", "Custom reporting tools"},
	{"Mobile App Integration", "Progressive Web App features", "Offline synchronization", "Push notifications"},
	{"API Gateway and Microservices", "Service mesh architecture", "Container orchestration", "Auto-scaling capabilities"},
	{"Enhanced Security Features", "End-to-end encryption", "Advanced authentication", "Security audit logging"},
	{"Content Management System", "Rich text editor", "Media file handling", "Version control for content"},
	{"Social Features Integration", "User profiles and connections", "Comment and rating system", "Community moderation tools"},
	{"Data Export and Integration", "CSV/JSON export functionality", "Third-party API integrations", "Webhook support"},
}

var simulatedDifficulties = []string{"Easy", "Medium", "Hard"}

// SimulatedCollector fabricates one plausible opinion per agent. There is
// no synchronous reply path after a dispatch, so instead of blocking on a
// channel that never fires this collector produces themed analysis text
// and marks every opinion as simulated.
type SimulatedCollector struct {
	rng *rand.Rand
}

// NewSimulatedCollector creates a collector seeded for varied output.
func NewSimulatedCollector(seed int64) *SimulatedCollector {
	return &SimulatedCollector{rng: rand.New(rand.NewSource(seed))}
}

// Collect returns one simulated opinion per agent.
func (c *SimulatedCollector) Collect(_ context.Context, agents []domain.AgentDescriptor, repo domain.RepoRef) []domain.Opinion {
	opinions := make([]domain.Opinion, 0, len(agents))
	for _, agent := range agents {
		variation := featureVariations[c.rng.Intn(len(featureVariations))]
		text := fmt.Sprintf(`Analysis from %s:

Repository Analysis for %s:

Suggested Features:
1. **%s** (%s difficulty)
   - %s
   - Advanced implementation with modern best practices

2. **%s** (%s difficulty)
   - %s
   - Scalable architecture with performance optimization

3. **Enhanced Developer Experience** (%s difficulty)
   - Automated testing and CI/CD pipeline
   - Code quality tools and documentation generation
`,
			agent.DisplayName(), repo.URL(),
			variation[0], c.difficulty(), variation[1],
			variation[2], c.difficulty(), variation[3],
			c.difficulty(),
		)

		opinions = append(opinions, domain.Opinion{
			Source:    agent.DisplayName(),
			Text:      text,
			Simulated: true,
		})
		logger.Debug("collector: simulated response from %s", agent.DisplayName())
	}
	return opinions
}

func (c *SimulatedCollector) difficulty() string {
	return simulatedDifficulties[c.rng.Intn(len(simulatedDifficulties))]
}
