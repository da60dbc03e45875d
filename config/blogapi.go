package config

import (
	"log"
	"os"
)

const defaultBlogAPIBaseURL = "http://localhost:8000"

// GetBlogAPIBaseURL returns the base URL of the blog generation service.
// Every upstream call (stream, listing, summarize) goes through this one URL.
func GetBlogAPIBaseURL() string {
	baseURL := os.Getenv("BLOG_API_BASE_URL")
	if baseURL == "" {
		log.Printf("BLOG_API_BASE_URL not set, falling back to %s", defaultBlogAPIBaseURL)
		return defaultBlogAPIBaseURL
	}
	return baseURL
}

// GetExportDir returns the directory exported article files are written to.
func GetExportDir() string {
	dir := os.Getenv("BLOG_EXPORT_DIR")
	if dir == "" {
		return "exports"
	}
	return dir
}

// GetListenAddr returns the address the gateway listens on.
func GetListenAddr() string {
	addr := os.Getenv("GATEWAY_ADDR")
	if addr == "" {
		return ":8080"
	}
	return addr
}
