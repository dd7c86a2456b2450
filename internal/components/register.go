package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// RegisterScreen is the owner registration screen every purchase control
// leads to.
func RegisterScreen() g.Node {
	return Div(
		Class("container flex justify-center py-16"),
		ID("register"),
		Div(
			Class("card w-full max-w-md border border-base-300"),
			Div(
				Class("card-body"),
				H1(Class("font-bold text-2xl"), g.Text("Create your owner account")),
				P(Class("text-sm text-base-content/70"), g.Text("Your 14-day trial starts as soon as you sign up.")),
				Form(
					Class("mt-4 space-y-4"),
					Action("#"),
					Div(
						Label(Class("label"), For("email"), g.Text("Email")),
						Input(ID("email"), Name("email"), Type("email"), Class("input input-bordered w-full"), Required()),
					),
					Div(
						Label(Class("label"), For("pet-name"), g.Text("Your pet's name")),
						Input(ID("pet-name"), Name("pet_name"), Type("text"), Class("input input-bordered w-full")),
					),
					Button(Type("submit"), Class("btn btn-primary w-full"), g.Text("Continue")),
				),
				P(
					Class("mt-4 text-sm text-center"),
					A(Href("/"), g.Text("Back to home")),
				),
			),
		),
	)
}
