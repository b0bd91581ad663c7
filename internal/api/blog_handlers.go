package api

import (
	"github.com/gofiber/fiber/v2"

	"AstroVision/internal/domain"
	"AstroVision/internal/usecase"
)

func (s *Server) handleListBlog(c *fiber.Ctx) error {
	posts, err := s.deps.Blog.Published(c.UserContext(), c.Query("q"), c.Query("category"))
	if err != nil {
		return err
	}
	return c.JSON(envelope(posts, fiber.Map{"count": len(posts)}))
}

func (s *Server) handleBlogCategories(c *fiber.Ctx) error {
	cats := append([]string{domain.CategoryAll}, domain.BlogCategories...)
	return c.JSON(envelope(cats, nil))
}

func (s *Server) handleBlogPost(c *fiber.Ctx) error {
	post, err := s.deps.Blog.BySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(envelope(post, nil))
}

func (s *Server) handleAdminPosts(c *fiber.Ctx) error {
	posts, err := s.deps.Blog.AdminList(c.UserContext(), c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(envelope(posts, fiber.Map{"count": len(posts)}))
}

func (s *Server) handleNewPost(c *fiber.Ctx) error {
	return c.JSON(envelope(s.deps.Blog.NewPost(), fiber.Map{"categories": domain.BlogCategories}))
}

func (s *Server) handleSavePost(c *fiber.Ctx) error {
	var post domain.BlogPost
	if err := c.BodyParser(&post); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	saved, created, err := s.deps.Blog.Save(c.UserContext(), post)
	if err != nil {
		return err
	}
	if created {
		return c.Status(fiber.StatusCreated).JSON(envelope(saved, fiber.Map{"message": usecase.MsgPostCreated}))
	}
	return c.JSON(envelope(saved, fiber.Map{"message": usecase.MsgPostUpdated}))
}

func (s *Server) handleDeletePost(c *fiber.Ctx) error {
	if err := s.deps.Blog.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(envelope(nil, fiber.Map{"message": usecase.MsgPostDeleted}))
}

func (s *Server) handleAddTag(c *fiber.Ctx) error {
	var payload tagPayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	post, err := s.deps.Blog.Tag(c.UserContext(), c.Params("id"), payload.Tag)
	if err != nil {
		return err
	}
	return c.JSON(envelope(post, nil))
}

func (s *Server) handleRemoveTag(c *fiber.Ctx) error {
	post, err := s.deps.Blog.Untag(c.UserContext(), c.Params("id"), c.Params("tag"))
	if err != nil {
		return err
	}
	return c.JSON(envelope(post, nil))
}
