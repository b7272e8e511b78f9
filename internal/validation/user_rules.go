package validation

// Rule lists for the user routes. Messages follow the original wording
// where a custom one exists.

func emailRules(path string) []Rule {
	return []Rule{
		BodyField(path,
			WithMessage(Exists(), "Email must be present"),
			IsString(),
			WithMessage(IsEmail(), "Email must be valid"),
		),
	}
}

func passwordRules(path string) []Rule {
	return []Rule{
		BodyField(path,
			WithMessage(NotEmpty(), "Password must be present"),
			WithMessage(IsString(), "Password must be valid"),
			WithMessage(MaxLen(20), "Password must be at most 20 characters long"),
			WithMessage(IsStrongPassword(), "Password is not strong enough"),
		),
	}
}

var idRule = ParamField("id", WithMessage(IsObjectID(), "Id must be valid"))

var CreateUser = append(emailRules("email"), passwordRules("password")...)

var GetUserByID = []Rule{idRule}

var UpdateCurrentUserEmail = emailRules("email")

var UpdateUserEmailByID = append([]Rule{idRule}, emailRules("email")...)

var UpdateCurrentUserPassword = append(passwordRules("password"),
	BodyField("oldPassword",
		WithMessage(NotEmpty(), "Old password must be present"),
		WithMessage(IsString(), "Old password must be valid"),
	),
)

var UpdateUserPasswordByID = append([]Rule{idRule}, passwordRules("password")...)

var DeleteUser = []Rule{idRule}
