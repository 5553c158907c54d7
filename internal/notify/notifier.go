package notify

import (
	"log"

	"gorm.io/gorm"

	"github.com/hammam97-h/barber-booking/internal/models"
)

// Message is an owner-facing note about something that happened in the shop.
type Message struct {
	Title   string
	Content string
}

// Dispatcher delivers owner notifications off the request path. Delivery is
// best-effort: a full queue or a failed write is logged and forgotten, it
// never fails the booking that produced it.
type Dispatcher struct {
	db    *gorm.DB
	queue chan Message
}

func NewDispatcher(db *gorm.DB) *Dispatcher {
	d := &Dispatcher{
		db:    db,
		queue: make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		n := models.Notification{
			Title:   msg.Title,
			Content: msg.Content,
		}
		if err := d.db.Create(&n).Error; err != nil {
			log.Println("notify error:", err)
			continue
		}
		log.Printf("notify: %s", msg.Title)
	}
}

func (d *Dispatcher) Dispatch(msg Message) {
	if d == nil {
		return
	}

	select {
	case d.queue <- msg:
	default:
		log.Println("notify queue full, dropping message")
	}
}
