package format

import (
	"strings"

	"github.com/bilgisen/kientruc/internal/models"
)

const (
	PostFallbackTitle    = "Bài viết"
	PostFallbackCategory = "Bài viết"
	PostFallbackAuthor   = "Khoa Kiến Trúc"
	PostFallbackImage    = "https://images.unsplash.com/photo-1464146072230-91cabc968266?auto=format&fit=crop&w=900&q=80"

	DefaultExcerptLimit          = 140
	DefaultShortDescriptionLimit = 120
)

var postTitleFields = []field[models.Post]{
	func(p models.Post) string { return p.Title },
}

var postImageFields = []field[models.Post]{
	func(p models.Post) string { return p.ThumbnailURL },
	func(p models.Post) string { return p.FeaturedImage },
	func(p models.Post) string { return p.CoverImage },
	func(p models.Post) string { return p.HeroImage },
	func(p models.Post) string { return p.Image },
	func(p models.Post) string { return p.Thumbnail },
}

var postExcerptFields = []field[models.Post]{
	func(p models.Post) string { return p.Excerpt },
	func(p models.Post) string { return p.ShortDescription },
	func(p models.Post) string { return p.Description },
	func(p models.Post) string { return p.Summary },
}

var postShortDescriptionFields = []field[models.Post]{
	func(p models.Post) string { return p.ShortDescription },
	func(p models.Post) string { return p.Excerpt },
	func(p models.Post) string { return p.Summary },
	func(p models.Post) string { return p.Description },
}

var postDateFields = []field[models.Post]{
	func(p models.Post) string { return p.Date },
	func(p models.Post) string { return p.PublishedAt },
	func(p models.Post) string { return p.CreatedAt },
}

var postCategoryFields = []field[models.Post]{
	func(p models.Post) string { return namedValue(p.Category) },
	func(p models.Post) string {
		if len(p.Tags) == 0 {
			return ""
		}
		return p.Tags[0]
	},
}

var postAuthorFields = []field[models.Post]{
	func(p models.Post) string { return namedValue(p.Author) },
	func(p models.Post) string { return p.AuthorName },
}

var postAvatarFields = []field[models.Post]{
	func(p models.Post) string { return p.Avatar },
	func(p models.Post) string { return p.AuthorAvatar },
	func(p models.Post) string {
		if p.Author == nil || p.Author.Plain {
			return ""
		}
		return p.Author.Avatar
	},
}

func PostTitle(p models.Post) string {
	return firstOf(p, postTitleFields, PostFallbackTitle)
}

func PostImage(p models.Post) string {
	return firstOf(p, postImageFields, PostFallbackImage)
}

func PostCategory(p models.Post) string {
	return firstOf(p, postCategoryFields, PostFallbackCategory)
}

func PostAuthor(p models.Post) string {
	return firstOf(p, postAuthorFields, PostFallbackAuthor)
}

// PostAvatar returns the author's avatar URL or "" when there is none.
func PostAvatar(p models.Post) string {
	return firstOf(p, postAvatarFields, "")
}

// PostExcerpt returns the trimmed excerpt cut to limit characters
// (DefaultExcerptLimit when limit is not positive). No source text yields "".
func PostExcerpt(p models.Post, limit int) string {
	if limit <= 0 {
		limit = DefaultExcerptLimit
	}
	return Truncate(firstOf(p, postExcerptFields, ""), limit)
}

// PostShortDescription is PostExcerpt with the short description preferred.
func PostShortDescription(p models.Post, limit int) string {
	if limit <= 0 {
		limit = DefaultShortDescriptionLimit
	}
	return Truncate(firstOf(p, postShortDescriptionFields, ""), limit)
}

// PostDate renders the publication date as dd/mm/yyyy. A post without any
// date yields "", an unparseable one Updating.
func PostDate(p models.Post) string {
	raw := firstOf(p, postDateFields, "")
	if raw == "" {
		return ""
	}
	t, ok := parseDate(raw)
	if !ok {
		return Updating
	}
	return shortDate(t)
}

func namedValue(n *models.Named) string {
	if n == nil || strings.TrimSpace(n.Name) == "" {
		return ""
	}
	return n.Name
}
