package services

import (
	"fmt"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// CreateComment validates the request and stores a new comment against the
// given post id. The post is not required to exist.
func (s *CommentService) CreateComment(postID string, req *models.CreateCommentRequest) (*models.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	comment := &models.Comment{
		PostID:    postID,
		ParentID:  req.ParentID,
		Commenter: req.Commenter,
		Text:      req.Text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListPostComments retrieves all comments for a post, newest first.
func (s *CommentService) ListPostComments(postID string) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(postID)
}

// ThreadPostComments assembles the post's comments into reply trees.
// Top-level order follows ListPostComments (newest first); replies keep the
// same order within their parent. A reply whose parent is missing, and any
// comment caught in a parent-reference cycle, is promoted to top level so
// every comment appears exactly once.
func (s *CommentService) ThreadPostComments(postID string) ([]*models.CommentNode, error) {
	comments, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, err
	}

	nodes := make(map[string]*models.CommentNode, len(comments))
	for _, comment := range comments {
		nodes[comment.ID] = &models.CommentNode{Comment: *comment}
	}

	var roots []*models.CommentNode
	attached := make(map[string]bool, len(comments))
	for _, comment := range comments {
		node := nodes[comment.ID]
		if comment.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*comment.ParentID]
		if !ok || *comment.ParentID == comment.ID {
			// Orphaned or self-referential reply.
			roots = append(roots, node)
			continue
		}
		parent.Replies = append(parent.Replies, node)
		attached[comment.ID] = true
	}

	// Comments only reachable through a cycle are attached but never
	// reached from a root. Promote one node per cycle to break it.
	reached := make(map[string]bool, len(nodes))
	var walk func(node *models.CommentNode)
	walk = func(node *models.CommentNode) {
		if reached[node.ID] {
			return
		}
		reached[node.ID] = true
		for _, reply := range node.Replies {
			walk(reply)
		}
	}
	for _, root := range roots {
		walk(root)
	}
	for _, comment := range comments {
		if attached[comment.ID] && !reached[comment.ID] {
			node := nodes[comment.ID]
			// Detach from the parent so the result stays acyclic.
			parent := nodes[*comment.ParentID]
			for i, reply := range parent.Replies {
				if reply == node {
					parent.Replies = append(parent.Replies[:i], parent.Replies[i+1:]...)
					break
				}
			}
			roots = append(roots, node)
			walk(node)
		}
	}

	if roots == nil {
		roots = []*models.CommentNode{}
	}
	return roots, nil
}
