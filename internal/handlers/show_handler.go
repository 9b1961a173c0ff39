package handlers

import (
	"log"
	"net/http"

	"github.com/farellandr/fyyur/internal/flash"
	"github.com/farellandr/fyyur/internal/helpers"
	"github.com/farellandr/fyyur/internal/middleware"
	"github.com/farellandr/fyyur/internal/models"
	"github.com/farellandr/fyyur/internal/queue"
	"github.com/farellandr/fyyur/internal/repository"
	"github.com/farellandr/fyyur/internal/views"
	"github.com/gin-gonic/gin"
)

func ListShows(c *gin.Context) {
	gormDB, exists := middleware.GetDB(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	shows, err := repository.NewShowRepo(gormDB).List(c.Request.Context())
	if err != nil {
		log.Printf("shows: %v", err)
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving shows.")
		return
	}

	render(c, http.StatusOK, "shows.html", gin.H{"shows": views.NewShowListings(shows)})
}

func NewShow(c *gin.Context) {
	render(c, http.StatusOK, "new_show.html", nil)
}

func CreateShow(c *gin.Context) {
	var form ShowForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Add(c, failure("Show could not be listed", repository.Invalid("%v", err)))
		render(c, http.StatusOK, "home.html", nil)
		return
	}

	show, err := form.show()
	if err != nil {
		flash.Add(c, failure("Show could not be listed", err))
		render(c, http.StatusOK, "home.html", nil)
		return
	}

	gormDB, exists := middleware.GetDB(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	if err := repository.NewShowRepo(gormDB).Create(c.Request.Context(), &show); err != nil {
		log.Printf("shows: create artist=%d venue=%d: %v", show.ArtistID, show.VenueID, err)
		flash.Add(c, failure("Show could not be listed", err))
		render(c, http.StatusOK, "home.html", nil)
		return
	}

	flash.Add(c, "Show was successfully listed!")
	publish(c, queue.ShowListedQueue, queue.ShowListedEvent{
		EventID:   newEventID(),
		ShowID:    show.ID,
		ArtistID:  show.ArtistID,
		VenueID:   show.VenueID,
		StartTime: views.FormatStartTime(show.StartTime),
		ListedAt:  views.FormatStartTime(now()),
	})
	render(c, http.StatusOK, "home.html", nil)
}

func (f ShowForm) show() (models.Show, error) {
	artistID, err := helpers.StringToID(f.ArtistID)
	if err != nil {
		return models.Show{}, repository.Invalid("artist id %q is not a number", f.ArtistID)
	}
	venueID, err := helpers.StringToID(f.VenueID)
	if err != nil {
		return models.Show{}, repository.Invalid("venue id %q is not a number", f.VenueID)
	}
	startTime, err := helpers.ParseStartTime(f.StartTime)
	if err != nil {
		return models.Show{}, repository.Invalid("start time %q is not a date and time", f.StartTime)
	}
	return models.Show{ArtistID: artistID, VenueID: venueID, StartTime: startTime}, nil
}
