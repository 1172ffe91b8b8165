package routes

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production
	},
}

// Connected clients map with mutex for thread safety
var clients = make(map[*websocket.Conn]bool)
var broadcast = make(chan []byte, 100) // Buffered channel to prevent blocking
var mutex = &sync.Mutex{}
var validate = validator.New()

// event is the frame pushed to websocket clients when content changes.
type event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// notify queues an event for all connected websocket clients.
func notify(name string, data interface{}) {
	payload, err := json.Marshal(event{Event: name, Data: data})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", name, err)
		return
	}
	select {
	case broadcast <- payload:
	default:
		// Drop the event rather than stall a request handler
	}
}

func SetupRoutes(app *fiber.App) {

	wsHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Error upgrading:", err)
			return
		}
		defer conn.Close()

		mutex.Lock()
		clients[conn] = true
		mutex.Unlock()
		log.Println("Client connected:", conn.RemoteAddr())

		// Clients only receive; the read loop just detects disconnects
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("WebSocket read error: %v", err)
				}
				mutex.Lock()
				delete(clients, conn)
				mutex.Unlock()
				log.Println("Client disconnected:", conn.RemoteAddr())
				break
			}
		}
	})

	// Handle broadcasting events to all clients
	go func() {
		for message := range broadcast {
			mutex.Lock()
			for client := range clients {
				err := client.WriteMessage(websocket.TextMessage, message)
				if err != nil {
					log.Printf("WebSocket write error: %v", err)
					client.Close()
					delete(clients, client)
				}
			}
			mutex.Unlock()
		}
	}()

	// Mount WebSocket endpoint
	app.Get("/ws", wsHandler)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running")
	})

	api := app.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/register", register)
	authGroup.Post("/login", login)

	// Post routes
	posts := api.Group("/posts")
	posts.Post("/upload", uploadImage)
	posts.Get("/", getPosts)
	posts.Post("/", requireAuth, createPost)
	posts.Get("/:id", getPost)
	posts.Put("/:id", requireAuth, updatePost)
	posts.Delete("/:id", requireAuth, deletePost)
	posts.Post("/:id/like", requireAuth, likePost)
	posts.Post("/:id/unlike", requireAuth, unlikePost)

	// Category routes
	categories := api.Group("/categories")
	categories.Get("/", getCategories)
	categories.Post("/", requireAuth, createCategory)
	categories.Put("/:id", requireAuth, updateCategory)
	categories.Delete("/:id", requireAuth, deleteCategory)

	// Comment routes
	comments := api.Group("/comments")
	comments.Get("/post/:postId", getCommentsByPost)
	comments.Post("/post/:postId", requireAuth, addComment)
	comments.Delete("/:commentId", requireAuth, deleteComment)
}
