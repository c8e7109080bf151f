package handlers

import (
	"errors"
	"log"
	"net/http"

	"pulse_landing/middleware"
	"pulse_landing/models"
	"pulse_landing/services"
	"pulse_landing/templates/partials"

	"github.com/labstack/echo/v4"
)

// EmailChangeHandler stores the typed email verbatim.
// htmx gets both subscribe buttons back; plain posts are redirected to the page.
func EmailChangeHandler(c echo.Context) error {
	email := c.FormValue("email")

	state, err := services.ViewStates.Update(middleware.GetSessionID(c), func(s *models.ViewState) error {
		s.SetEmail(email)
		return nil
	})
	if err != nil {
		log.Printf("Error updating email: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update email")
	}

	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/#subscribe")
	}
	return render(c, http.StatusOK, partials.SubscribeButtons(c.Request().Context(), landingView(c, state)))
}

// SubscribeHandler latches the submitted flag when the email is valid.
// A refused submit is not an error: the buttons simply stay as they are.
func SubscribeHandler(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data")
	}
	emails, hasEmail := params["email"]

	accepted := false
	state, err := services.ViewStates.Update(middleware.GetSessionID(c), func(s *models.ViewState) error {
		if hasEmail && len(emails) > 0 {
			s.SetEmail(emails[0])
		}
		accepted = s.Submit()
		return nil
	})
	if err != nil {
		log.Printf("Error submitting subscription: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to subscribe")
	}
	if accepted {
		c.Logger().Infof("Visitor %s subscribed", middleware.GetSessionID(c))
	}

	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/#subscribe")
	}
	return render(c, http.StatusOK, partials.SubscribeButtons(c.Request().Context(), landingView(c, state)))
}

// SelectPlanHandler selects one of the catalog plans
func SelectPlanHandler(c echo.Context) error {
	id, err := models.ParsePlanID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown plan")
	}

	state, err := services.ViewStates.Update(middleware.GetSessionID(c), func(s *models.ViewState) error {
		return s.SelectPlan(id)
	})
	if err != nil {
		if errors.Is(err, models.ErrUnknownPlan) {
			return echo.NewHTTPError(http.StatusBadRequest, "Unknown plan")
		}
		log.Printf("Error selecting plan: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to select plan")
	}

	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/#pricing")
	}
	return render(c, http.StatusOK, partials.Pricing(c.Request().Context(), landingView(c, state)))
}
