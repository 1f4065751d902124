package services

import (
	"errors"
	"sort"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

const postsPerDayWindow = 7 * 24 * time.Hour

// AnalyticsService computes read-only aggregations over posts and comments.
// Every query is computed fresh on each call; nothing is cached or stored.
type AnalyticsService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
	now         func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *AnalyticsService {
	return &AnalyticsService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		now:         time.Now,
	}
}

// AuthorRanking groups posts by author and ranks the groups by post count,
// descending. Ties break by author name ascending.
func (s *AnalyticsService) AuthorRanking() ([]*models.AuthorRank, error) {
	counts, err := s.postRepo.CountByAuthor()
	if err != nil {
		return nil, err
	}

	ranking := make([]*models.AuthorRank, 0, len(counts))
	for author, count := range counts {
		ranking = append(ranking, &models.AuthorRank{Author: author, PostCount: count})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].PostCount != ranking[j].PostCount {
			return ranking[i].PostCount > ranking[j].PostCount
		}
		return ranking[i].Author < ranking[j].Author
	})
	return ranking, nil
}

// TopCommentedPosts ranks posts by comment count, descending (post id
// ascending on ties), and returns at most the top 5 joined to their post
// records. Posts with zero comments never appear. Comment groups whose post
// no longer resolves are dangling references and are skipped.
func (s *AnalyticsService) TopCommentedPosts() ([]*models.TopPost, error) {
	counts, err := s.commentRepo.CountByPost()
	if err != nil {
		return nil, err
	}

	ranked := make([]*models.TopPost, 0, len(counts))
	for postID, count := range counts {
		ranked = append(ranked, &models.TopPost{PostID: postID, CommentCount: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].CommentCount != ranked[j].CommentCount {
			return ranked[i].CommentCount > ranked[j].CommentCount
		}
		return ranked[i].PostID < ranked[j].PostID
	})

	// Take the top 5 groups first, then join; a dangling group therefore
	// shrinks the result rather than pulling in a lower-ranked post.
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	top := make([]*models.TopPost, 0, len(ranked))
	for _, entry := range ranked {
		post, err := s.postRepo.GetByID(entry.PostID)
		if errors.Is(err, repositories.ErrNotFound) || errors.Is(err, repositories.ErrInvalidID) {
			continue
		}
		if err != nil {
			return nil, err
		}
		entry.Post = post
		top = append(top, entry)
	}
	return top, nil
}

// PostsPerDay counts posts created within the last 7x24 hours, grouped by
// UTC calendar date, sorted by date ascending. The series is sparse: dates
// with no posts are omitted.
func (s *AnalyticsService) PostsPerDay() ([]*models.DayCount, error) {
	cutoff := s.now().Add(-postsPerDayWindow)
	counts, err := s.postRepo.CountByDaySince(cutoff)
	if err != nil {
		return nil, err
	}

	series := make([]*models.DayCount, 0, len(counts))
	for date, count := range counts {
		series = append(series, &models.DayCount{Date: date, Count: count})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})
	return series, nil
}
