// Package seed provides helpers to create fixture and demo data for the
// application database. Intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"chirp/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Fixture is one user entry in a YAML fixtures file.
type Fixture struct {
	Name   string `yaml:"name"`
	APIKey string `yaml:"api_key"`
}

// Seeder builds domain entities and persists them to the database.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{db: db}
}

// Clean truncates all domain tables.
func (s *Seeder) Clean() error {
	return s.db.Exec("TRUNCATE TABLE media, followers, likes, tweets, users CASCADE").Error
}

// CreateUser inserts one user. An empty apiKey gets a generated one.
func (s *Seeder) CreateUser(name, apiKey string) (*models.User, error) {
	if apiKey == "" {
		apiKey = uuid.NewString()
	}
	user := &models.User{Name: name, APIKey: apiKey}
	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user %q: %w", name, err)
	}
	return user, nil
}

// LoadFixtures reads a YAML fixtures file and creates the users it lists.
func (s *Seeder) LoadFixtures(path string) ([]*models.User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}

	fixtures, err := ParseFixtures(data)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, len(fixtures))
	for _, f := range fixtures {
		user, err := s.CreateUser(f.Name, f.APIKey)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// ParseFixtures decodes the YAML fixture list and rejects entries without a name.
func ParseFixtures(data []byte) ([]Fixture, error) {
	var fixtures []Fixture
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	for i, f := range fixtures {
		if f.Name == "" {
			return nil, fmt.Errorf("fixture %d has no name", i)
		}
	}
	return fixtures, nil
}

// GenerateDemo creates numUsers fake users each posting tweetsPerUser tweets,
// then wires a random mesh of follows and likes between them.
func (s *Seeder) GenerateDemo(numUsers, tweetsPerUser int) error {
	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.CreateUser(gofakeit.Username(), "")
		if err != nil {
			return err
		}
		users = append(users, user)
	}

	var tweets []*models.Tweet
	for _, user := range users {
		for i := 0; i < tweetsPerUser; i++ {
			tweet := &models.Tweet{
				TweetData: gofakeit.Sentence(8),
				APIKey:    user.APIKey,
			}
			if err := s.db.Create(tweet).Error; err != nil {
				return fmt.Errorf("create tweet: %w", err)
			}
			tweets = append(tweets, tweet)
		}
	}

	// Roughly a third of all possible follow edges, skipping self-follows
	// and duplicates.
	for _, follower := range users {
		for _, followed := range users {
			if follower.ID == followed.ID || rand.Intn(3) != 0 {
				continue
			}
			edge := &models.Follower{FollowerID: follower.ID, FollowedID: followed.ID}
			if err := s.db.Create(edge).Error; err != nil {
				return fmt.Errorf("create follow edge: %w", err)
			}
		}
	}

	for _, user := range users {
		for _, tweet := range tweets {
			if rand.Intn(4) != 0 {
				continue
			}
			like := &models.Like{UserID: user.ID, TweetID: tweet.TweetID}
			if err := s.db.Create(like).Error; err != nil {
				return fmt.Errorf("create like: %w", err)
			}
		}
	}

	return nil
}
