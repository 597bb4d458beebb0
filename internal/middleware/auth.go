package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Vcortez99-hub/essentia/backend/internal/apierror"
	"github.com/Vcortez99-hub/essentia/backend/internal/logger"
	"github.com/Vcortez99-hub/essentia/backend/internal/repository"
	"github.com/Vcortez99-hub/essentia/backend/pkg/supabase"
)

// Auth middleware to verify JWT tokens
func Auth(client *supabase.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromContext(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Debug("authentication failed: missing authorization header")
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Debug("authentication failed: invalid authorization format")
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
			c.Abort()
			return
		}

		token := parts[1]

		// Verify token with Supabase
		user, err := client.VerifyToken(token)
		if err != nil {
			log.Warn("authentication failed: token verification error",
				logger.Err(err),
			)
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
			c.Abort()
			return
		}

		// Set user in context
		c.Set("user_id", user.ID)
		c.Set("user_email", user.Email)
		c.Set("user_token", token) // Store JWT token for RLS

		// Add user ID to request context for logging
		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)

		log.Debug("authentication successful",
			logger.String("user_id", user.ID),
			logger.String("user_email", user.Email),
		)

		c.Next()
	}
}

// RequireStaff restricts a route to HR and admin users. It must run
// after Auth, which sets user_id in the gin context.
func RequireStaff(userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromContext(c.Request.Context())
		requestID := apierror.GetRequestID(c)

		userID := c.GetString("user_id")
		if userID == "" {
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
			c.Abort()
			return
		}

		user, err := userRepo.GetByID(c.Request.Context(), userID)
		if err != nil {
			log.Warn("staff check failed: could not load user",
				logger.String("user_id", userID),
				logger.Err(err),
			)
			apierror.WriteProblem(c, apierror.NewForbiddenError(requestID))
			c.Abort()
			return
		}

		if !user.IsStaff() {
			log.Debug("staff check rejected non-staff user",
				logger.String("user_id", userID),
				logger.String("role", user.Role),
			)
			apierror.WriteProblem(c, apierror.NewForbiddenError(requestID))
			c.Abort()
			return
		}

		c.Next()
	}
}
