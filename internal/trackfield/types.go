package trackfield

import "time"

type Profile struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Club        string    `json:"club,omitempty"`
	Discipline  string    `json:"discipline,omitempty"`
	Birthdate   string    `json:"birthdate,omitempty"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type FeedPost struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

type FeedPage struct {
	Posts   []FeedPost `json:"posts"`
	Page    int        `json:"page"`
	HasMore bool       `json:"hasMore"`
}

type TrainingSession struct {
	ID          string    `json:"id"`
	GroupID     string    `json:"groupId,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartsAt    time.Time `json:"startsAt"`
	DurationMin int       `json:"durationMin"`
}

type TrainingGroup struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	CoachID string   `json:"coachId,omitempty"`
	Members []string `json:"members,omitempty"`
}
