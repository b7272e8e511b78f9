package validation

// Rule lists for the auth routes.

var SignUp = append(emailRules("email"), passwordRules("password")...)

var SignIn = append(emailRules("email"), []Rule{
	BodyField("password",
		WithMessage(IsString(), "Password must be present"),
		WithMessage(NotEmpty(), "Password must be present"),
	),
}...)

var ResetPassword = emailRules("email")

var ResetPasswordByToken = append([]Rule{
	ParamField("token",
		Exists(),
		IsString(),
		WithMessage(IsAlphanumeric(), "Token must be valid"),
		WithMessage(LenBetween(24, 24), "Token must be valid"),
	),
}, passwordRules("password")...)
