package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/farellandr/fyyur/internal/flash"
	"github.com/farellandr/fyyur/internal/helpers"
	"github.com/farellandr/fyyur/internal/middleware"
	"github.com/farellandr/fyyur/internal/repository"
	"github.com/farellandr/fyyur/internal/views"
	"github.com/gin-gonic/gin"
)

func ListArtists(c *gin.Context) {
	gormDB, exists := middleware.GetDB(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	artists, err := repository.NewArtistRepo(gormDB).List(c.Request.Context())
	if err != nil {
		log.Printf("artists: %v", err)
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artists.")
		return
	}

	render(c, http.StatusOK, "artists.html", gin.H{"artists": views.NewArtistList(artists)})
}

func SearchArtists(c *gin.Context) {
	gormDB, exists := middleware.GetDB(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	ctx := c.Request.Context()
	searchTerm := c.PostForm("search_term")

	artists, err := repository.NewArtistRepo(gormDB).Search(ctx, searchTerm)
	if err != nil {
		log.Printf("artists: %v", err)
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error searching artists.")
		return
	}
	upcoming, err := repository.NewShowRepo(gormDB).CountUpcomingByArtist(ctx, views.ArtistIDs(artists), now())
	if err != nil {
		log.Printf("artists: %v", err)
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error searching artists.")
		return
	}

	render(c, http.StatusOK, "search_artists.html", gin.H{
		"results":     views.NewArtistSearchResults(artists, upcoming),
		"search_term": searchTerm,
	})
}

func GetArtist(c *gin.Context) {
	artistID, err := helpers.StringToID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
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

	artist, err := repository.NewArtistRepo(gormDB).Get(ctx, artistID)
	if err != nil {
		respondLookupError(c, "Artist", err)
		return
	}
	past, err := showRepo.PastForArtist(ctx, artistID, current)
	if err != nil {
		respondLookupError(c, "Artist", err)
		return
	}
	upcoming, err := showRepo.UpcomingForArtist(ctx, artistID, current)
	if err != nil {
		respondLookupError(c, "Artist", err)
		return
	}

	render(c, http.StatusOK, "show_artist.html", gin.H{"artist": views.NewArtistDetail(artist, past, upcoming)})
}

func NewArtist(c *gin.Context) {
	render(c, http.StatusOK, "new_artist.html", gin.H{"artist": views.ArtistForm{}})
}

func CreateArtist(c *gin.Context) {
	var form ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Add(c, failure(strings.TrimSpace("Artist "+form.Name)+" could not be listed", repository.Invalid("%v", err)))
		render(c, http.StatusOK, "home.html", nil)
		return
	}

	gormDB, exists := middleware.GetDB(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	artist := form.artist()
	if err := repository.NewArtistRepo(gormDB).Create(c.Request.Context(), &artist, splitGenres(form.Genres)); err != nil {
		log.Printf("artists: create %q: %v", form.Name, err)
		flash.Add(c, failure(strings.TrimSpace("Artist "+form.Name)+" could not be listed", err))
		render(c, http.StatusOK, "home.html", nil)
		return
	}

	flash.Add(c, "Artist "+artist.Name+" was successfully listed!")
	render(c, http.StatusOK, "home.html", nil)
}

func EditArtist(c *gin.Context) {
	artistID, err := helpers.StringToID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
		return
	}

	gormDB, exists := middleware.GetDB(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	artist, err := repository.NewArtistRepo(gormDB).Get(c.Request.Context(), artistID)
	if err != nil {
		respondLookupError(c, "Artist", err)
		return
	}

	render(c, http.StatusOK, "edit_artist.html", gin.H{"artist": views.NewArtistForm(artist)})
}

func UpdateArtist(c *gin.Context) {
	artistID, err := helpers.StringToID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
		return
	}
	location := fmt.Sprintf("/artists/%d", artistID)

	var form ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Add(c, failure("Artist could not be updated", repository.Invalid("%v", err)))
		redirect(c, location)
		return
	}

	gormDB, exists := middleware.GetDB(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	artist, err := repository.NewArtistRepo(gormDB).Update(c.Request.Context(), artistID, form.artist(), splitGenres(form.Genres))
	if err != nil {
		log.Printf("artists: update %d: %v", artistID, err)
		flash.Add(c, failure("Artist could not be updated", err))
		redirect(c, location)
		return
	}

	flash.Add(c, "Artist "+artist.Name+" has been updated.")
	redirect(c, location)
}
