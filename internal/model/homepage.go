package model

import "time"

// HomepageContent is a singleton — at most one row ever exists. It holds
// the landing-page copy plus ordered references to featured skills and
// projects. The store keeps bare IDs; the read path expands them (see
// HomepageView).
type HomepageContent struct {
	ID                 string     `json:"_id"`
	Name               string     `json:"name"`
	Headline           string     `json:"headline"`
	AboutText          string     `json:"aboutText"`
	ProfileImageURL    string     `json:"profileImageUrl,omitempty"`
	FeaturedSkillIDs   StringList `json:"featuredSkillIds"`
	FeaturedProjectIDs StringList `json:"featuredProjectIds"`
	ResumeURL          string     `json:"resumeUrl,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// HomepageView is the API representation of the homepage singleton: the
// featured reference lists are expanded to full Skill/Project records,
// under the same JSON keys the stored form uses. References that no
// longer resolve (a featured skill was deleted) are silently dropped.
type HomepageView struct {
	ID               string    `json:"_id"`
	Name             string    `json:"name"`
	Headline         string    `json:"headline"`
	AboutText        string    `json:"aboutText"`
	ProfileImageURL  string    `json:"profileImageUrl,omitempty"`
	FeaturedSkills   []Skill   `json:"featuredSkillIds"`
	FeaturedProjects []Project `json:"featuredProjectIds"`
	ResumeURL        string    `json:"resumeUrl,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
