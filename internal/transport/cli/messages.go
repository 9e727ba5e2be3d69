package cli

import (
	"fmt"

	"patientdesk/internal/patient/models"
	"patientdesk/pkg/platform/validation"
)

const (
	menuHeader   = "\n--- Patient Management System ---\n=================================="
	promptChoice = "Select a number above to perform the corresponding task (1-6): "

	headerAdd    = "\n--- Add New Patient ---"
	headerList   = "\n--- Patient Records ---"
	headerSearch = "\n--- Search Patient ---"
	headerUpdate = "\n--- Update Patient ---"
	headerDelete = "\n--- Delete Patient ---"

	promptFirstName   = "Enter First Name: "
	promptLastName    = "Enter Last Name: "
	promptDateOfBirth = "Enter Date of Birth (dd-mm-yyyy): "
	promptPhoneNumber = "Enter Phone Number (" + models.PhoneNumberExample + "): "
	promptHometown    = "Enter Hometown: "
	promptHouseNumber = "Enter House Number: "

	promptUpdateFirstName   = "Update First Name (leave blank to keep current): "
	promptUpdateLastName    = "Update Last Name (leave blank to keep current): "
	promptUpdateDateOfBirth = "Update Date of Birth (dd-mm-yyyy, or leave blank to keep current): "
	promptUpdatePhoneNumber = "Update Phone Number (" + models.PhoneNumberExample + ", or leave blank to keep current): "
	promptUpdateHometown    = "Update Hometown (leave blank to keep current): "
	promptUpdateHouseNumber = "Update House Number (leave blank to keep current): "

	promptSearchID = "Enter Patient ID to Search: "
	promptUpdateID = "Enter Patient ID to Update: "
	promptDeleteID = "Enter Patient ID to Delete: "

	msgInvalidDateOfBirth = "Invalid date format. Please enter a valid date (dd-mm-yyyy)."
	msgInvalidPhoneNumber = "Invalid phone number format. Please use " + models.PhoneNumberExample + "."
	msgInvalidID          = "Invalid ID. Please enter a numeric patient ID."
	msgInvalidChoice      = "Invalid choice. Please try again."

	msgAdded          = "Patient added successfully!"
	msgAssignedID     = "Assigned patient ID: %d"
	msgNoRecords      = "No patient records found."
	msgNotFound       = "Patient not found."
	msgUpdating       = "Updating record for %s (ID: %d)"
	msgUpdated        = "Patient record updated successfully!"
	msgDeleted        = "Patient with ID %d has been deleted."
	msgRejected       = "Invalid input: %s"
	msgUnexpected     = "Something went wrong: %s"
	msgGoodbye        = "Closing the program. Goodbye!"
	patientLine       = "ID: %d, Name: %s, Age: %d, Hometown: %s, Phone: %s"
	patientDetailLine = "Date of Birth: %s, House Number: %s"
)

var (
	msgInvalidFirstName = fmt.Sprintf("Invalid input. First name should only contain letters and spaces, up to %d characters.", validation.MaxNameLength)
	msgInvalidLastName  = fmt.Sprintf("Invalid input. Last name should only contain letters and spaces, up to %d characters.", validation.MaxNameLength)
	msgInvalidHometown  = fmt.Sprintf("Invalid input. Hometown can be at most %d characters.", validation.MaxHometownLength)

	msgInvalidHouseNumber = fmt.Sprintf("Invalid input. House number can be at most %d characters.", validation.MaxHouseNumberLength)
)

var menuItems = []string{
	"1. Add New Patient",
	"2. Get All Patients",
	"3. Search Patient by ID",
	"4. Update Patient by ID",
	"5. Delete Patient by ID",
	"6. Exit",
}
