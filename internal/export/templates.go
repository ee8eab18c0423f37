package export

import (
	"github.com/topronto/admin-backoffice/internal/models"
)

var Drivers = Table[models.Driver]{
	Filename: "chauffeurs.csv",
	Sheet:    "Chauffeurs",
	Columns: []Column[models.Driver]{
		{"Nome", func(d models.Driver) string { return d.FullName() }},
		{"Email", func(d models.Driver) string { return d.Email }},
		{"Telefone", func(d models.Driver) string { return d.Phone }},
		{"Cidade", func(d models.Driver) string { return d.City }},
		{"Tem Veículo", func(d models.Driver) string { return yesNo(d.HasVehicle) }},
		{"Tipo de Veículo", func(d models.Driver) string { return str(d.VehicleType) }},
		{"Anos de Experiência", func(d models.Driver) string { return itoa(d.ExperienceYears) }},
		{"Status", func(d models.Driver) string { return string(d.Status) }},
		{"Data de Criação", func(d models.Driver) string { return date(d.CreatedAt) }},
	},
}

var Enterprises = Table[models.Enterprise]{
	Filename: "empresas.csv",
	Sheet:    "Empresas",
	Columns: []Column[models.Enterprise]{
		{"Empresa", func(e models.Enterprise) string { return e.Name }},
		{"Email", func(e models.Enterprise) string { return e.Email }},
		{"Telefone", func(e models.Enterprise) string { return e.Phone }},
		{"Pessoa de Contato", func(e models.Enterprise) string { return e.ContactPerson }},
		{"Cargo", func(e models.Enterprise) string { return e.Position }},
		{"Cidade", func(e models.Enterprise) string { return e.City }},
		{"Setor", func(e models.Enterprise) string { return e.Industry }},
		{"Tipo de Veículo", func(e models.Enterprise) string { return e.VehicleType }},
		{"Entregas Mensais", func(e models.Enterprise) string { return e.MonthlyDeliveries }},
		{"Status", func(e models.Enterprise) string { return string(e.Status) }},
		{"Data de Criação", func(e models.Enterprise) string { return date(e.CreatedAt) }},
	},
}

var Contacts = Table[models.Contact]{
	Filename: "contacts.csv",
	Sheet:    "Contacts",
	Columns: []Column[models.Contact]{
		{"Nome", func(c models.Contact) string { return c.Name }},
		{"Email", func(c models.Contact) string { return c.Email }},
		{"Telefone", func(c models.Contact) string { return c.PhoneNumber() }},
		{"Assunto", func(c models.Contact) string { return c.Subject }},
		{"Mensagem", func(c models.Contact) string { return c.Message }},
		{"Lida", func(c models.Contact) string { return yesNo(c.IsRead) }},
		{"Data de Criação", func(c models.Contact) string { return date(c.CreatedAt) }},
	},
}

var JobOffers = Table[models.JobOffer]{
	Filename: "job-offers.csv",
	Sheet:    "Ofertas",
	Columns: []Column[models.JobOffer]{
		{"Título", func(o models.JobOffer) string { return o.Title }},
		{"Localização", func(o models.JobOffer) string { return o.Location }},
		{"Tipo de Contrato", func(o models.JobOffer) string { return o.EmploymentType }},
		{"Salário", func(o models.JobOffer) string { return str(o.SalaryRange) }},
		{"Ativa", func(o models.JobOffer) string { return yesNo(o.IsActive) }},
		{"Candidaturas", func(o models.JobOffer) string { return itoa(o.ApplicationsCount) }},
		{"Data de Criação", func(o models.JobOffer) string { return date(o.CreatedAt) }},
	},
}

var Applications = Table[models.JobApplication]{
	Filename: "candidaturas.csv",
	Sheet:    "Candidaturas",
	Columns: []Column[models.JobApplication]{
		{"Nome", func(a models.JobApplication) string { return a.FullName() }},
		{"Email", func(a models.JobApplication) string { return a.Email }},
		{"Telefone", func(a models.JobApplication) string { return a.Phone }},
		{"Anos de Experiência", func(a models.JobApplication) string { return itoa(a.ExperienceYears) }},
		{"Status", func(a models.JobApplication) string { return string(a.Status) }},
		{"Data de Candidatura", func(a models.JobApplication) string { return date(a.CreatedAt) }},
	},
}
