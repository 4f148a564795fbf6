package middleware

import (
	"github.com/gofiber/fiber/v2"
	"log"
)

// LogIncomingRequest log an incoming request. It logs the ip of the incoming request, the method and path
func LogIncomingRequest(ctx *fiber.Ctx) error {
	log.Printf("[middleware][LogIncomingRequest] incoming request: %s  %s: %s\n", ctx.IP(), ctx.Method(), ctx.Path())
	return ctx.Next()
}
