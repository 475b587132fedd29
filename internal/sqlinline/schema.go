package sqlinline

// Schema bootstrap statements, executed one by one at startup. There is no
// migration system; tables are created on first run and altered by hand.

const QSchemaAdmins = `--sql 1a3c5e79-2b4d-4f6a-8c0e-9d1f3b5a7c92
create table if not exists admins (
  id text primary key,
  email text not null unique,
  password_hash text not null,
  name text not null,
  created_at timestamptz not null default now()
);
`

const QSchemaClients = `--sql 4d6f8a02-5c7e-4b9d-a1f3-0e2c4a6d8f15
create table if not exists clients (
  id text primary key,
  name text not null,
  logo text not null,
  subtitle text not null,
  description text not null,
  sort_order int not null default 0,
  created_at timestamptz not null default now(),
  updated_at timestamptz not null default now()
);
`

const QSchemaProjects = `--sql 7a9c1e35-8d0f-4c2b-b4a6-3f5e7c9b1d48
create table if not exists projects (
  id text primary key,
  main_title text not null,
  client text not null default '',
  location text not null default '',
  date_label text not null default '',
  category text not null default '',
  featured boolean not null default false,
  overview text not null default '',
  stats jsonb not null default '[]'::jsonb,
  services jsonb not null default '[]'::jsonb,
  images jsonb not null default '[]'::jsonb,
  client_logo text not null default '',
  views bigint not null default 0,
  created_at timestamptz not null default now(),
  updated_at timestamptz not null default now()
);
`

const QSchemaAnalyticsEvents = `--sql 0c2e4a68-9b1d-4f3c-8e5a-6d7f9a1c3e70
create table if not exists analytics_events (
  id text primary key,
  type text not null,
  page text not null,
  project_id text,
  ip text not null default '',
  user_agent text not null default '',
  referrer text not null default '',
  country text not null default '',
  created_at timestamptz not null default now()
);
`

const QSchemaAnalyticsEventsIndex = `--sql e3f5b7d9-1a2c-4e6f-b8d0-4c6e8a0b2d95
create index if not exists analytics_events_type_created_at_idx
  on analytics_events (type, created_at);
`
