package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	res, err := a.users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		a.writeError(c, err, "Server error during registration")
		return
	}

	respond(c, http.StatusCreated, MsgUserRegistered, gin.H{
		"user":  toUserJSON(res.User),
		"token": res.Token,
	})
}

func (a *API) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	res, err := a.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		a.writeError(c, err, "Server error during login")
		return
	}

	respond(c, http.StatusOK, MsgLoginSuccessful, gin.H{
		"user":  toUserJSON(res.User),
		"token": res.Token,
	})
}

func (a *API) me(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		fail(c, http.StatusUnauthorized, MsgUnauthorized)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"user": toUserJSON(user)})
}

func (a *API) checkEmail(c *gin.Context) {
	var req checkEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	exists, err := a.users.EmailExists(c.Request.Context(), req.Email)
	if err != nil {
		a.writeError(c, err, "Server error while checking email")
		return
	}
	respond(c, http.StatusOK, "", gin.H{"exists": exists})
}

func (a *API) resetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	if err := a.users.ResetPassword(c.Request.Context(), req.Email, req.NewPassword); err != nil {
		a.writeError(c, err, "Server error while resetting password")
		return
	}
	respond(c, http.StatusOK, MsgPasswordReset, nil)
}
