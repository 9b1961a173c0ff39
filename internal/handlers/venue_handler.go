package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/farellandr/fyyur/internal/flash"
	"github.com/farellandr/fyyur/internal/helpers"
	"github.com/farellandr/fyyur/internal/middleware"
	"github.com/farellandr/fyyur/internal/queue"
	"github.com/farellandr/fyyur/internal/repository"
	"github.com/farellandr/fyyur/internal/views"
	"github.com/gin-gonic/gin"
)

func ListVenues(c *gin.Context) {
	gormDB, exists := middleware.GetDB(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	ctx := c.Request.Context()
	venueRepo := repository.NewVenueRepo(gormDB)
	showRepo := repository.NewShowRepo(gormDB)
	current := now()

	areas, err := venueRepo.Areas(ctx)
	if err != nil {
		log.Printf("venues: %v", err)
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venues.")
		return
	}

	data := make([]views.VenueArea, 0, len(areas))
	for _, area := range areas {
		venues, err := venueRepo.ListByCity(ctx, area.City)
		if err != nil {
			log.Printf("venues: %v", err)
			helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venues.")
			return
		}
		upcoming, err := showRepo.CountUpcomingByVenue(ctx, views.VenueIDs(venues), current)
		if err != nil {
			log.Printf("venues: %v", err)
			helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venues.")
			return
		}
		data = append(data, views.NewVenueArea(area, venues, upcoming))
	}

	render(c, http.StatusOK, "venues.html", gin.H{"areas": data})
}

func SearchVenues(c *gin.Context) {
	gormDB, exists := middleware.GetDB(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	ctx := c.Request.Context()
	searchTerm := c.PostForm("search_term")

	venues, err := repository.NewVenueRepo(gormDB).Search(ctx, searchTerm)
	if err != nil {
		log.Printf("venues: %v", err)
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error searching venues.")
		return
	}
	upcoming, err := repository.NewShowRepo(gormDB).CountUpcomingByVenue(ctx, views.VenueIDs(venues), now())
	if err != nil {
		log.Printf("venues: %v", err)
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error searching venues.")
		return
	}

	render(c, http.StatusOK, "search_venues.html", gin.H{
		"results":     views.NewVenueSearchResults(venues, upcoming),
		"search_term": searchTerm,
	})
}

func GetVenue(c *gin.Context) {
	venueID, err := helpers.StringToID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
		return
	}

	gormDB, exists := middleware.GetDB(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	ctx := c.Request.Context()
	showRepo := repository.NewShowRepo(gormDB)
	current := now()

	venue, err := repository.NewVenueRepo(gormDB).Get(ctx, venueID)
	if err != nil {
		respondLookupError(c, "Venue", err)
		return
	}
	past, err := showRepo.PastForVenue(ctx, venueID, current)
	if err != nil {
		respondLookupError(c, "Venue", err)
		return
	}
	upcoming, err := showRepo.UpcomingForVenue(ctx, venueID, current)
	if err != nil {
		respondLookupError(c, "Venue", err)
		return
	}

	render(c, http.StatusOK, "show_venue.html", gin.H{"venue": views.NewVenueDetail(venue, past, upcoming)})
}

func NewVenue(c *gin.Context) {
	render(c, http.StatusOK, "new_venue.html", gin.H{"venue": views.VenueForm{}})
}

func CreateVenue(c *gin.Context) {
	var form VenueForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Add(c, failure(strings.TrimSpace("Venue "+form.Name)+" could not be listed", repository.Invalid("%v", err)))
		render(c, http.StatusOK, "home.html", nil)
		return
	}

	gormDB, exists := middleware.GetDB(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	venue := form.venue()
	if err := repository.NewVenueRepo(gormDB).Create(c.Request.Context(), &venue, splitGenres(form.Genres)); err != nil {
		log.Printf("venues: create %q: %v", form.Name, err)
		flash.Add(c, failure(strings.TrimSpace("Venue "+form.Name)+" could not be listed", err))
		render(c, http.StatusOK, "home.html", nil)
		return
	}

	flash.Add(c, "Venue "+venue.Name+" was successfully listed!")
	render(c, http.StatusOK, "home.html", nil)
}

func EditVenue(c *gin.Context) {
	venueID, err := helpers.StringToID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
		return
	}

	gormDB, exists := middleware.GetDB(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	venue, err := repository.NewVenueRepo(gormDB).Get(c.Request.Context(), venueID)
	if err != nil {
		respondLookupError(c, "Venue", err)
		return
	}

	render(c, http.StatusOK, "edit_venue.html", gin.H{"venue": views.NewVenueForm(venue)})
}

func UpdateVenue(c *gin.Context) {
	venueID, err := helpers.StringToID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
		return
	}
	location := fmt.Sprintf("/venues/%d", venueID)

	var form VenueForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Add(c, failure("Venue could not be updated", repository.Invalid("%v", err)))
		redirect(c, location)
		return
	}

	gormDB, exists := middleware.GetDB(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	venue, err := repository.NewVenueRepo(gormDB).Update(c.Request.Context(), venueID, form.venue(), splitGenres(form.Genres))
	if err != nil {
		log.Printf("venues: update %d: %v", venueID, err)
		flash.Add(c, failure("Venue could not be updated", err))
		redirect(c, location)
		return
	}

	flash.Add(c, "Venue "+venue.Name+" has been updated.")
	redirect(c, location)
}

func DeleteVenue(c *gin.Context) {
	venueID, err := helpers.StringToID(c.Param("id"))
	if err != nil {
		flash.Add(c, "This venue doesn't exist.")
		redirect(c, "/")
		return
	}

	gormDB, exists := middleware.GetDB(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	venue, removed, err := repository.NewVenueRepo(gormDB).Delete(c.Request.Context(), venueID)
	switch {
	case repository.KindOf(err) == repository.KindNotFound:
		flash.Add(c, "This venue doesn't exist.")
	case err != nil:
		log.Printf("venues: delete %d: %v", venueID, err)
		flash.Add(c, "An error occurred. Venue could not be deleted.")
	default:
		flash.Add(c, venue.Name+" venue has been deleted.")
		publish(c, queue.VenueDeletedQueue, queue.VenueDeletedEvent{
			EventID:      newEventID(),
			VenueID:      venue.ID,
			VenueName:    venue.Name,
			ShowsRemoved: removed,
			DeletedAt:    views.FormatStartTime(now()),
		})
	}
	redirect(c, "/")
}

// respondLookupError renders 404 for a missing record and 500 for anything
// else that went wrong while loading a detail page.
func respondLookupError(c *gin.Context, entity string, err error) {
	if repository.KindOf(err) == repository.KindNotFound {
		helpers.RespondWithError(c, http.StatusNotFound, entity+" not found.")
		return
	}
	log.Printf("%s lookup: %v", entity, err)
	helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving "+entity+".")
}
