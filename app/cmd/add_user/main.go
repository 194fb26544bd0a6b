package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/MITHLESH24364/fee-management-system-educo/app/config"
	"github.com/MITHLESH24364/fee-management-system-educo/app/database"
	"github.com/MITHLESH24364/fee-management-system-educo/app/models"
	"github.com/MITHLESH24364/fee-management-system-educo/app/routes/auth"
)

func main() {
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Usage: add_user -email <email> -password <password> [-first-name <name>] [-last-name <name>]")
	}

	config.Load()
	db := config.GetDB()
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Email:     *email,
		Password:  hashed,
		FirstName: *firstName,
		LastName:  *lastName,
		IsActive:  true,
	}

	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Error creating user:", err)
	}

	fmt.Printf("User created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
