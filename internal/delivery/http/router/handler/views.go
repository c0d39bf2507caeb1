package handler

import (
	"time"

	"quill/internal/domain/entity"
	"quill/internal/usecase"
)

// View models decouple the JSON surface from domain entities; entities never
// serialize directly.

type userView struct {
	ID      string       `json:"id"`
	Email   string       `json:"email"`
	Profile *profileView `json:"profile,omitempty"`
}

type profileView struct {
	ID          string            `json:"id"`
	Handle      string            `json:"handle"`
	Bio         string            `json:"bio,omitempty"`
	SocialLinks map[string]string `json:"social_links,omitempty"`
	AvatarURL   string            `json:"avatar_url,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

type sessionView struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	User         userView `json:"user"`
	NeedsProfile bool     `json:"needs_profile"` // True until the user claims a handle.
}

type postView struct {
	ID           string    `json:"id"`
	AuthorHandle string    `json:"author_handle,omitempty"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// postLinkView is the compact neighbor reference used for prev/next
// navigation on a post page.
type postLinkView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type postDetailView struct {
	Post  postView      `json:"post"`
	Newer *postLinkView `json:"newer,omitempty"`
	Older *postLinkView `json:"older,omitempty"`
}

type postListView struct {
	Posts   []postView `json:"posts"`
	Page    int        `json:"page"`
	HasMore bool       `json:"has_more"`
}

type profileListView struct {
	Profiles []profileView `json:"profiles"`
	Page     int           `json:"page"`
	HasMore  bool          `json:"has_more"`
}

func toUserView(user *entity.User) userView {
	view := userView{
		ID:    user.ID.String(),
		Email: user.Email,
	}
	if user.Profile != nil {
		profile := toProfileView(user.Profile)
		view.Profile = &profile
	}

	return view
}

func toProfileView(profile *entity.Profile) profileView {
	view := profileView{
		ID:          profile.ID.String(),
		Handle:      profile.Handle,
		Bio:         profile.Bio,
		SocialLinks: profile.SocialLinks,
		CreatedAt:   profile.CreatedAt,
	}
	if profile.Avatar != nil {
		view.AvatarURL = profile.Avatar.URL
	}

	return view
}

func toSessionView(output *usecase.SessionOutput) sessionView {
	return sessionView{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         toUserView(output.User),
		NeedsProfile: output.User.Profile == nil,
	}
}

func toPostView(post *entity.Post) postView {
	return postView{
		ID:           post.ID.String(),
		AuthorHandle: post.AuthorHandle,
		Title:        post.Title,
		Content:      post.Content,
		Published:    post.Published,
		CreatedAt:    post.CreatedAt,
		UpdatedAt:    post.UpdatedAt,
	}
}

func toPostLinkView(post *entity.Post) *postLinkView {
	if post == nil {
		return nil
	}

	return &postLinkView{
		ID:    post.ID.String(),
		Title: post.Title,
	}
}

func toPostDetailView(output *usecase.PostDetailOutput) postDetailView {
	return postDetailView{
		Post:  toPostView(output.Post),
		Newer: toPostLinkView(output.Newer),
		Older: toPostLinkView(output.Older),
	}
}

func toPostListView(output *usecase.PostListOutput) postListView {
	posts := make([]postView, 0, len(output.Posts))
	for _, post := range output.Posts {
		posts = append(posts, toPostView(post))
	}

	return postListView{
		Posts:   posts,
		Page:    output.Page,
		HasMore: output.HasMore,
	}
}

func toProfileListView(output *usecase.ProfileListOutput) profileListView {
	profiles := make([]profileView, 0, len(output.Profiles))
	for _, profile := range output.Profiles {
		profiles = append(profiles, toProfileView(profile))
	}

	return profileListView{
		Profiles: profiles,
		Page:     output.Page,
		HasMore:  output.HasMore,
	}
}
